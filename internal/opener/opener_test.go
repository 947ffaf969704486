// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package opener

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLauncher struct {
	targets []string
	err     error
}

func (f *fakeLauncher) launch(target string) error {
	f.targets = append(f.targets, target)
	return f.err
}

func TestValidate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://snelabs.space", false},
		{"http://example.org/path?q=1", false},
		{"mailto:byrenanmelo@gmail.com", false},
		{"MAILTO:someone@example.org", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"https://", true},
		{"mailto:", true},
		{"not a url", true},
		{"", true},
	}
	for _, tt := range tests {
		err := Validate(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
	assert.ErrorIs(t, Validate("ftp://example.org"), ErrScheme)
}

func TestOpenErr_Launches(t *testing.T) {
	fl := &fakeLauncher{}
	o := New(WithLauncher(fl.launch))

	require.NoError(t, o.OpenErr("https://github.com/SNE-Labs"))
	assert.Equal(t, []string{"https://github.com/SNE-Labs"}, fl.targets)
	assert.Equal(t, "https://github.com/SNE-Labs", o.Last())
}

func TestOpenErr_RejectsScheme(t *testing.T) {
	fl := &fakeLauncher{}
	o := New(WithLauncher(fl.launch))

	assert.ErrorIs(t, o.OpenErr("file:///tmp/x"), ErrScheme)
	assert.Empty(t, fl.targets)
}

func TestOpenErr_RateLimited(t *testing.T) {
	fl := &fakeLauncher{}
	o := New(WithLauncher(fl.launch), WithRate(time.Hour, 2))

	require.NoError(t, o.OpenErr("https://a.example"))
	require.NoError(t, o.OpenErr("https://b.example"))
	assert.ErrorIs(t, o.OpenErr("https://c.example"), ErrRateLimited)
	assert.Len(t, fl.targets, 2)
}

func TestOpen_SwallowsErrors(t *testing.T) {
	fl := &fakeLauncher{err: errors.New("no browser")}
	o := New(WithLauncher(fl.launch))

	assert.NotPanics(t, func() { o.Open("https://snelabs.space") })
	assert.NotPanics(t, func() { o.Open("gopher://old.example") })
	assert.Len(t, fl.targets, 1)
}

func TestCopy(t *testing.T) {
	var copied []string
	o := New(WithClipboard(func(s string) error {
		copied = append(copied, s)
		return nil
	}))

	require.NoError(t, o.Copy("mailto:byrenanmelo@gmail.com"))
	require.NoError(t, o.Copy("https://snelabs.space"))
	assert.Equal(t, []string{"byrenanmelo@gmail.com", "https://snelabs.space"}, copied)

	assert.Error(t, o.Copy("file:///x"))
}

func TestCopy_WriterError(t *testing.T) {
	o := New(WithClipboard(func(string) error { return errors.New("no display") }))
	assert.Error(t, o.Copy("https://snelabs.space"))

	o = New(WithClipboard(nil))
	assert.Error(t, o.Copy("https://snelabs.space"))
}
