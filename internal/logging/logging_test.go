package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name   string
		logger Logger
		want   []string
		absent []string
	}{
		{"Silent", Logger{}, nil, []string{"[info]", "[warn]", "[debug]", "[error]"}},
		{"Verbose", Logger{Verbose: true}, []string{"[info] opened", "[warn] careful"}, []string{"[debug]", "[error]"}},
		{"Debug", Logger{Debug: true}, []string{"[info] opened", "[warn] careful", "[debug] detail", "[error] broke"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := tt.logger
			l.Out = &buf

			l.Infof("opened %s", "x")
			l.Warnf("careful")
			l.Debugf("detail")
			l.Errorf("broke")

			got := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Expected %q in output, got %q", w, got)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("Did not expect %q in output, got %q", a, got)
				}
			}
		})
	}
}

func TestErrorfAndReturn(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Out: &buf}

	err := l.ErrorfAndReturn("failed to open %s", "file")
	if err == nil || err.Error() != "failed to open file" {
		t.Errorf("Unexpected error %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected nothing logged without debug, got %q", buf.String())
	}
}
