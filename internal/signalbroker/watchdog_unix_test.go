// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/matt-FFFFFF/sgr/internal/ctxlog"
)

func TestWatch_UnregistersBeforeClosing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGUSR2)
	defer signal.Stop(sigCh)

	// A second subscriber keeps SIGUSR2 handled by the process after
	// Watch closes sigCh, and proves delivery still works afterwards.
	guard := make(chan os.Signal, 1)
	signal.Notify(guard, syscall.SIGUSR2)
	defer signal.Stop(guard)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		Watch(ctx, sigCh, cancel)
	}()
	sigCh <- os.Interrupt
	sigCh <- os.Interrupt

	wg.Wait()

	// sigCh is closed now. If Watch had left it registered, this
	// delivery would panic the runtime with a send on a closed channel.
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR2); err != nil {
		t.Fatalf("failed to send signal: %v", err)
	}

	select {
	case sig := <-guard:
		if sig != syscall.SIGUSR2 {
			t.Errorf("guard received %v, want %v", sig, syscall.SIGUSR2)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("signal was not delivered to the remaining subscriber")
	}
}
