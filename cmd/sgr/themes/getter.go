// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package themes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/sgr/internal/ctxlog"
)

const (
	// goGetterPathSeparator is the separator used in go-getter URLs to separate the base URL from the subdirectory and file name.
	goGetterPathSeparator = "//"
	// goGetterRefSeparator is the separator used in go-getter URLs to separate the base URL from the ref (branch, tag, commit).
	goGetterRefSeparator = "?"
	// minimumGetterParts is the minimum number of parts in a go-getter URL after splitting by goGetterPathSeparator.
	minimumGetterParts = 3
)

// ErrGetThemeFile is returned when a theme file cannot be retrieved.
var ErrGetThemeFile = errors.New("failed to get theme file")

// fetchThemeFile retrieves the content at the given URL using Hashicorp's go-getter.
// It returns the content together with the file name so that callers can dispatch
// on the extension. The temporary directory used for the download is removed
// before returning.
func fetchThemeFile(ctx context.Context, url string) ([]byte, string, error) {
	if url == "" {
		return nil, "", fmt.Errorf("%w: URL is empty", ErrGetThemeFile)
	}

	ctxlog.Debug(ctx, "fetchThemeFile", "url", url)

	tmpDir, err := os.MkdirTemp("", "sgr-themes-")
	if err != nil {
		return nil, "", errors.Join(ErrGetThemeFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Join(ErrGetThemeFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "theme"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// If the URL is not a local file, we have to download the parent and then
	// read the file from the resulting directory.
	// This is a workaround for https://github.com/hashicorp/go-getter/issues/98.
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, "", errors.Join(ErrGetThemeFile, err)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return nil, "", fmt.Errorf("%w: invalid URL format: %s", ErrGetThemeFile, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, "", errors.Join(ErrGetThemeFile, err)
	}

	content, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, "", errors.Join(ErrGetThemeFile, err)
	}

	return content, fileName, nil
}

// splitFileNameFromGetterURL takes a go-getter URL and splits it into the base URL and the file name.
// E.g. git::https://github.com/owner/repo//dir/themes.yaml?ref=main becomes:
// git::https://github.com/owner/repo//dir?ref=main and themes.yaml.
func splitFileNameFromGetterURL(url string) (string, string) {
	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	var ref string

	if strings.Contains(last, goGetterRefSeparator) {
		refSplit := strings.SplitN(last, goGetterRefSeparator, 2)
		last = refSplit[0]
		ref = refSplit[1]
	}

	// The URL must point at a file, not a directory.
	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)

	remaining := filepath.Dir(last)
	if remaining == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = remaining
	}

	newURL := strings.Join(parts, goGetterPathSeparator)
	if ref != "" {
		newURL = newURL + goGetterRefSeparator + ref
	}

	return newURL, fileName
}
