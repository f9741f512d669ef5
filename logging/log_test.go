package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   zerolog.Level
		wantOK bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"debug", zerolog.DebugLevel, true},
		{"info", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"err", zerolog.ErrorLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"fatal", zerolog.FatalLevel, true},
		{"loud", zerolog.InfoLevel, false},
		{"", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestReportIgnoresLoggerLevel(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })
	Logger = Logger.Level(zerolog.FatalLevel)

	var buf bytes.Buffer
	Report(&buf, errors.New("read poem.txt: no such file or directory"))
	assert.Contains(t, buf.String(), "read poem.txt: no such file or directory")
	assert.Contains(t, buf.String(), "ERR")
}
