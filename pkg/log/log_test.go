package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.DebugLevel)
	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	t.Cleanup(func() {
		logrus.SetOutput(previous)
	})

	return &buf
}

func TestWithFields_FiltroDesenvolvimento(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		want    []string
		notWant []string
	}{
		{
			name:    "Desenvolvimento mantém campos de auditoria",
			env:     "development",
			want:    []string{`"run_id":"abc"`, `"audit_rows":10`},
			notWant: []string{`"remote_addr"`},
		},
		{
			name: "Produção mantém todos os campos",
			env:  "production",
			want: []string{`"run_id":"abc"`, `"audit_rows":10`, `"remote_addr":"127.0.0.1"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			buf := captureOutput(t)

			L.WithFields(Fields{
				"run_id":      "abc",
				"audit_rows":  10,
				"remote_addr": "127.0.0.1",
			}).Info("teste")

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, buf.String(), w)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetup_NivelInvalido(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
