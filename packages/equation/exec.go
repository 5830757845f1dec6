package equation

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strings"
	"time"
)

// ExprPlaceholder in a render command argument is replaced by the
// expression. Without a placeholder the expression is written to stdin.
const ExprPlaceholder = "{}"

// waitDelay bounds how long a cancelled render may keep its output pipes
// open, for children that escaped the process group kill.
const waitDelay = 500 * time.Millisecond

// ExecRenderer returns a Renderer that runs an external typesetting
// command and decodes the PNG it writes to stdout. Each call owns its own
// process group, which is killed once timeout elapses so a hung render,
// including anything it forked, is abandoned without affecting other
// renders.
func ExecRenderer(command []string, timeout time.Duration) Renderer {
	return func(expr string) (image.Image, error) {
		if len(command) == 0 {
			return nil, ErrNoRenderer
		}
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return runRender(ctx, command, expr)
	}
}

func runRender(ctx context.Context, command []string, expr string) (image.Image, error) {
	args := make([]string, 0, len(command)-1)
	usesPlaceholder := false
	for _, arg := range command[1:] {
		if strings.Contains(arg, ExprPlaceholder) {
			arg = strings.ReplaceAll(arg, ExprPlaceholder, expr)
			usesPlaceholder = true
		}
		args = append(args, arg)
	}

	cmd := exec.CommandContext(ctx, command[0], args...)
	killProcessGroup(cmd)
	cmd.WaitDelay = waitDelay
	if !usesPlaceholder {
		cmd.Stdin = strings.NewReader(expr)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("render command timed out: %w", ctx.Err())
		}
		return nil, fmt.Errorf("render command failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}

	img, err := png.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("decoding rendered png: %w", err)
	}
	return img, nil
}
