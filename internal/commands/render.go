package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/virtbuild/guestprep/internal/assets"
	apperrors "github.com/virtbuild/guestprep/internal/errors"
	"github.com/virtbuild/guestprep/internal/log"
)

// keyValueFlag collects repeated -set name=value pairs.
type keyValueFlag map[string]string

func (kv keyValueFlag) String() string {
	pairs := make([]string, 0, len(kv))
	for k, v := range kv {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (kv keyValueFlag) Set(value string) error {
	name, val, found := strings.Cut(value, "=")
	if !found || name == "" {
		return fmt.Errorf("expected name=value, got %q", value)
	}
	kv[name] = val
	return nil
}

func CreateRenderCommand() *RenderCommand {
	gc := &RenderCommand{
		fs:   flag.NewFlagSet("render", flag.ExitOnError),
		vars: make(keyValueFlag),
	}

	gc.fs.Var(gc.vars, "set", "Template variable as name=value (repeatable)")
	gc.fs.BoolVar(&gc.fromAuto, "auto", false, "Resolve the source below the data dir's auto/ directory")

	return gc
}

// RenderCommand substitutes template variables in an install asset,
// such as a kickstart or preseed file, and writes the result.
type RenderCommand struct {
	fs   *flag.FlagSet
	vars keyValueFlag

	fromAuto bool
	src      string
	dst      string
}

func (g *RenderCommand) Name() string {
	return g.fs.Name()
}

func (g *RenderCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() != 2 {
		return fmt.Errorf("render requires source and destination arguments")
	}
	g.src = g.fs.Arg(0)
	g.dst = g.fs.Arg(1)

	if g.fromAuto {
		cfg, err := loadConfigOrFail(ctx.ConfigPath)
		if err != nil {
			return err
		}
		src, err := assets.NewStore(cfg.General.DataDir).AutoInstallPath(g.src)
		if err != nil {
			return err
		}
		g.src = src
	}

	return nil
}

func (g *RenderCommand) Run() error {
	log.Debugf("Rendering %s to %s with %d variable(s)", g.src, g.dst, len(g.vars))

	if err := assets.RenderFile(g.src, g.dst, g.vars); err != nil {
		return apperrors.NewCopyError(
			fmt.Sprintf("failed to render %s", g.src), err)
	}

	return nil
}
