package observe_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/stone-inventory/internal/errs"
	"github.com/Spok95/stone-inventory/internal/observe"
)

func TestLogLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	o := observe.NewLog(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := context.Background()

	o.BeforeValidate(ctx, "slab.add", "type", "Quartz")
	o.AfterMutation(ctx, "slab.add", "abc")
	o.OnError(ctx, "slab.get", errs.NotFound("Slab", "x"))
	o.OnError(ctx, "slab.get", errors.New("conn refused"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var levels []string
	for _, l := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &rec))
		levels = append(levels, rec["level"].(string))
	}
	assert.Equal(t, []string{"INFO", "INFO", "WARN", "ERROR"}, levels)
	assert.Contains(t, lines[0], `"type":"Quartz"`)
	assert.Contains(t, lines[2], `"kind":"not_found"`)
}

func TestMultiFansOut(t *testing.T) {
	t.Parallel()

	a, b := &observe.Recorder{}, &observe.Recorder{}
	o := observe.Multi(a, observe.Nop{}, b)
	ctx := context.Background()

	o.BeforeValidate(ctx, "sample.add")
	o.AfterMutation(ctx, "sample.add", "1")
	o.OnError(ctx, "sample.add", errs.ErrAlreadyExists)

	want := []string{"before:sample.add", "after:sample.add", "error:sample.add"}
	assert.Equal(t, want, a.Hooks())
	assert.Equal(t, want, b.Hooks())
}
