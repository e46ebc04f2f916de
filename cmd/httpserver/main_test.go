package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brownie44l1/http-origin/internal/server"
)

type recordingLogger struct {
	server.NullLogger
	warnings []string
}

func (l *recordingLogger) Warn(msg string, fields ...server.Field) {
	l.warnings = append(l.warnings, msg)
}

func TestParseDirectory(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     string
		warnings int
	}{
		{"no args", nil, ".", 0},
		{"double dash", []string{"--directory", "/x"}, "/x", 0},
		{"single dash with equals", []string{"-directory=/x"}, "/x", 0},
		{"extra after", []string{"--directory", "/x", "extra"}, "/x", 1},
		{"extra before", []string{"extra", "--directory", "/x"}, "/x", 1},
		{"unknown flag before", []string{"--foo", "--directory", "/x"}, "/x", 1},
		{"bad flag syntax", []string{"---x", "--directory", "/x"}, "/x", 1},
		{"missing value", []string{"--directory"}, ".", 1},
		{"last one wins", []string{"--directory", "/a", "--directory", "/b"}, "/b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			assert.Equal(t, tt.want, parseDirectory(tt.args, logger))
			assert.Len(t, logger.warnings, tt.warnings, "%v", logger.warnings)
		})
	}
}
