package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/loop"
	"github.com/san-kum/orrery/internal/tui"
	"github.com/san-kum/orrery/internal/version"
)

var (
	configFile string
	logLevel   string
	preset     string
	cameraMode string
	frameRate  int
	timeScale  float64
	// Plot sampling
	plotDuration float64
	plotDt       float64
	plotRealtime bool
)

// main registers the orrery commands and launches the windowed viewer when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:     "orrery",
		Short:   "interactive 3d solar system viewer",
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, logging.New(logging.ParseLevel(logLevel)))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "scene preset")
	rootCmd.PersistentFlags().Float64Var(&timeScale, "time-scale", 1.0, "simulation speed multiplier")
	rootCmd.Flags().StringVar(&cameraMode, "camera", "", "camera mode (orbit|free)")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the windowed viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, logging.New(logging.ParseLevel(logLevel)))
		},
	}
	guiCmd.Flags().StringVar(&cameraMode, "camera", "", "camera mode (orbit|free)")
	guiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "view the solar system in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the bodies in the scene",
		RunE:  listBodies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scene presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range body.Presets() {
				root, _ := body.Preset(name)
				sys := body.NewSystem(root)
				fmt.Printf("  %-8s %d bodies\n", name, sys.Count())
			}
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [body]",
		Short: "plot a body's orbital motion over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotBody,
	}
	plotCmd.Flags().Float64Var(&plotDuration, "time", 30.0, "simulated seconds")
	plotCmd.Flags().Float64Var(&plotDt, "dt", 0.05, "sample timestep")
	plotCmd.Flags().BoolVar(&plotRealtime, "realtime", false, "sample at the configured frame rate in wall-clock time")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, bodiesCmd, presetsCmd, plotCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: file values under CLI flags,
// flags only when explicitly set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		cfg.Preset = preset
	}
	if cameraMode != "" {
		cfg.Camera.Mode = cameraMode
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if cmd.Flags().Changed("time-scale") {
		cfg.TimeScale = timeScale
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sys, err := cfg.Scene()
	if err != nil {
		return err
	}

	cam := camera.NewOrbit(cfg.Camera.Distance)
	cam.Sensitivity = cfg.Camera.Sensitivity

	p := tea.NewProgram(tui.NewModel(sys, cam, frameRate), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sys, err := cfg.Scene()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISTANCE\tRADIUS\tORBIT\tSPIN\tSATELLITES")
	for _, s := range sys.Snapshot() {
		b, ok := findBody(sys.Root, s.Name)
		if !ok {
			continue
		}
		indent := strings.Repeat("  ", s.Depth)
		fmt.Fprintf(w, "%s%s\t%.1f\t%.2f\t%.4f\t%.4f\t%d\n",
			indent, s.Name, s.Distance, s.Radius, b.OrbitSpeed, b.SpinSpeed, len(b.Satellites))
	}
	return w.Flush()
}

func findBody(b body.Body, name string) (body.Body, bool) {
	if b.Name == name {
		return b, true
	}
	for _, sat := range b.Satellites {
		if found, ok := findBody(sat, name); ok {
			return found, true
		}
	}
	return body.Body{}, false
}

func plotBody(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sys, err := cfg.Scene()
	if err != nil {
		return err
	}

	if _, ok := findBody(sys.Root, name); !ok {
		return fmt.Errorf("unknown body %q", name)
	}

	var xs, zs []float64
	sample := func() {
		for _, s := range sys.Snapshot() {
			if s.Name == name {
				xs = append(xs, s.World.X)
				zs = append(zs, s.World.Z)
				return
			}
		}
	}

	if plotRealtime {
		l, err := loop.New(cfg.FrameRate, func(dt float64) {
			sys.Step(dt)
			sample()
		})
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(plotDuration*float64(time.Second)))
		defer cancel()
		if err := l.Run(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
	} else {
		steps := int(plotDuration / plotDt)
		if steps <= 0 {
			return fmt.Errorf("time/dt yields no samples")
		}
		for i := 0; i < steps; i++ {
			sys.Step(plotDt)
			sample()
		}
	}

	if plotRealtime {
		fmt.Printf("%s over %.1fs realtime (%d fps, x%.1f speed)\n\n", name, plotDuration, cfg.FrameRate, sys.SpeedScale)
	} else {
		fmt.Printf("%s over %.1fs (dt=%.3fs, x%.1f speed)\n\n", name, plotDuration, plotDt, sys.SpeedScale)
	}

	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("world x"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(zs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("world z"),
	))
	return nil
}
