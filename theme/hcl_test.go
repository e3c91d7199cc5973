package theme

import (
	"testing"

	"github.com/matt-FFFFFF/sgr"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_themeDecode(t *testing.T) {
	content := `
theme "kitchen-sink" {
  style "everything" {
    text               = "red"
    background         = "blue"
    intensity          = "bold"
    inverse            = true
    conceal            = true
    font_style         = "italic"
    font               = 1
    underline          = true
    overline           = true
    cross_out          = true
    ideogram_underline = "single"
    ideogram_overline  = "double"
    ideogram_stress    = true
    blink              = "slow"
    frame              = "encircled"
  }
}

theme "plain" {
  style "ok" {
    text = "green"
  }
}
`

	themes, err := ParseHCL([]byte(content), "test.sgrtheme.hcl")
	require.NoError(t, err)
	require.Len(t, themes, 2)

	want := sgr.Style{
		Text:              sgr.Red,
		Background:        sgr.Blue,
		Intensity:         sgr.Bold,
		Inversion:         sgr.InversionOn,
		Concealment:       sgr.Concealed,
		FontStyle:         sgr.Italic,
		Font:              sgr.FontAlt1,
		Underline:         sgr.Underlined,
		Overline:          sgr.Overlined,
		CrossOut:          sgr.CrossedOut,
		IdeogramUnderline: sgr.IdeogramUnderlineSingle,
		IdeogramOverline:  sgr.IdeogramOverlineDouble,
		IdeogramStress:    sgr.IdeogramStressed,
		Blink:             sgr.BlinkSlow,
		Frame:             sgr.Encircled,
	}

	assert.Equal(t, "kitchen-sink", themes[0].Name)
	assert.Equal(t, want, themes[0].Style("everything"))
	assert.Equal(t, "plain", themes[1].Name)
	assert.Equal(t, sgr.New(sgr.WithText(sgr.Green)), themes[1].Style("ok"))
}

func Test_themeDecodeFalseBoolsAreDefaults(t *testing.T) {
	content := `
theme "bools" {
  style "plain" {
    underline = false
    inverse   = false
    conceal   = false
  }
}
`

	themes, err := ParseHCL([]byte(content), "test.sgrtheme.hcl")
	require.NoError(t, err)
	require.Len(t, themes, 1)

	assert.Equal(t, sgr.Style{}, themes[0].Style("plain"))
}

func Test_themeDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "theme block without label",
			content: `theme {}`,
			wantErr: ErrBlockLabel,
		},
		{
			name: "style block without label",
			content: `
theme "x" {
  style {}
}
`,
			wantErr: ErrBlockLabel,
		},
		{
			name: "unknown attribute",
			content: `
theme "x" {
  style "y" {
    sparkle = true
  }
}
`,
			wantErr: ErrUnknownAttribute,
		},
		{
			name: "wrong attribute type",
			content: `
theme "x" {
  style "y" {
    underline = "yes"
  }
}
`,
			wantErr: ErrAttributeValue,
		},
		{
			name: "unknown color",
			content: `
theme "x" {
  style "y" {
    text = "mauve"
  }
}
`,
			wantErr: ErrUnknownColor,
		},
		{
			name: "value outside vocabulary",
			content: `
theme "x" {
  style "y" {
    blink = "fast"
  }
}
`,
			wantErr: ErrAttributeValue,
		},
		{
			name: "fractional font",
			content: `
theme "x" {
  style "y" {
    font = 1.7
  }
}
`,
			wantErr: ErrAttributeValue,
		},
		{
			name: "font out of range",
			content: `
theme "x" {
  style "y" {
    font = 12
  }
}
`,
			wantErr: ErrAttributeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHCL([]byte(tt.content), "test.sgrtheme.hcl")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_themeDecodeInvalidBlockType(t *testing.T) {
	_, err := ParseHCL([]byte(`palette "x" {}`), "test.sgrtheme.hcl")

	var invalidBlock *ErrInvalidBlock

	require.ErrorAs(t, err, &invalidBlock)
	assert.Equal(t, "palette", invalidBlock.BlockType)
}

func Test_themeDecodeSyntaxError(t *testing.T) {
	_, err := ParseHCL([]byte(`theme "x" {`), "test.sgrtheme.hcl")
	assert.Error(t, err)
}

func TestLoadHCLDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	dummyFsWithFiles(fs,
		[]string{"a.sgrtheme.hcl", "b.sgrtheme.hcl", "ignored.hcl"},
		[]string{
			`theme "alpha" {
  style "ok" {
    text = "green"
  }
}`,
			`theme "beta" {
  style "error" {
    text      = "red"
    intensity = "bold"
  }
}`,
			`theme "ignored" {}`,
		})
	gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})

	themes, err := LoadHCLDir("")
	require.NoError(t, err)
	require.Len(t, themes, 2)

	assert.Equal(t, "alpha", themes[0].Name)
	assert.Equal(t, "beta", themes[1].Name)
}

func TestLoadHCLDirNoFiles(t *testing.T) {
	gostub.Stub(&FsFactory, func() afero.Fs {
		return afero.NewMemMapFs()
	})

	_, err := LoadHCLDir("")
	assert.ErrorIs(t, err, ErrNoThemeFile)
}

func TestLoadHCLDirBadTheme(t *testing.T) {
	fs := afero.NewMemMapFs()
	dummyFsWithFiles(fs,
		[]string{"bad.sgrtheme.hcl"},
		[]string{`theme "bad" {
  style "ok" {
    text = "chartreuse"
  }
}`})
	gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})

	_, err := LoadHCLDir("")

	assert.ErrorIs(t, err, ErrParseThemeFile)
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestLoadHCLFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	dummyFsWithFiles(fs,
		[]string{"solo.sgrtheme.hcl"},
		[]string{`theme "solo" {
  style "hint" {
    text = "cyan"
  }
}`})
	gostub.Stub(&FsFactory, func() afero.Fs {
		return fs
	})

	themes, err := LoadHCLFile("solo.sgrtheme.hcl")
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "solo", themes[0].Name)
}

func TestLoadHCLFileMissing(t *testing.T) {
	gostub.Stub(&FsFactory, func() afero.Fs {
		return afero.NewMemMapFs()
	})

	_, err := LoadHCLFile("absent.sgrtheme.hcl")
	assert.ErrorIs(t, err, ErrReadThemeFile)
}

func dummyFsWithFiles(fs afero.Fs, fileNames []string, contents []string) {
	for i := range fileNames {
		_ = afero.WriteFile(fs, fileNames[i], []byte(contents[i]), 0644)
	}
}
