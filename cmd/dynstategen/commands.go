package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/yaml"

	"github.com/gogpu/dynstate"
	"github.com/gogpu/dynstate/cpp"
	"github.com/gogpu/dynstate/internal/config"
	"github.com/gogpu/dynstate/registry"
)

// cli holds flag values shared by the subcommands.
type cli struct {
	registry  string
	table     string
	enum      string
	logLevel  string
	outDir    string
	generator string
	asYAML    bool
	strict    bool
}

// options converts the flag values into generation options.
func (c *cli) options() dynstate.Options {
	opts := dynstate.DefaultOptions()
	opts.Registry = c.registry
	opts.Table = c.table
	opts.Enum = c.enum
	if c.generator != "" {
		opts.Emit.Generator = c.generator
	}
	return opts
}

// setupLogging installs a logger at the requested level in every package
// that logs.
func (c *cli) setupLogging() error {
	level, err := zapcore.ParseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	l, err := config.NewLogger(level)
	if err != nil {
		return err
	}
	dynstate.SetLogger(l)
	registry.SetLogger(l)
	cpp.SetLogger(l)
	return nil
}

func newRootCmd(cfg config.Config) *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "dynstategen",
		Short:         "Generate the Vulkan dynamic state helper sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setupLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&c.registry, "registry", cfg.Registry, "vk.xml or field list file (default: builtin feed)")
	root.PersistentFlags().StringVar(&c.table, "table", cfg.Table, "setter command table file (default: builtin table)")
	root.PersistentFlags().StringVar(&c.enum, "enum", registry.DynamicState, "registry enum to renumber")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", cfg.LogLevel.String(), "log level: debug, info, warn, error")

	root.AddCommand(
		newGenerateCmd(c, cfg),
		newListCmd(c),
		newDescribeCmd(c),
		newCheckCmd(c),
		newVersionCmd(),
	)
	return root
}

func newGenerateCmd(c *cli, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [filename...]",
		Short: "Write dynamic_state_helper.h and dynamic_state_helper.cpp",
		Long: `The generate command writes the named artifacts into the output directory.
Without arguments it writes every artifact the generator knows. Names it has
no code for are written with a diagnostic comment instead of code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(c.outDir, 0o755); err != nil {
				return fmt.Errorf("error creating output directory: %w", err)
			}
			paths, err := dynstate.GenerateAll(c.outDir, c.options(), args...)
			if err != nil {
				return fmt.Errorf("error generating artifacts: %w", err)
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&c.outDir, "out", "o", cfg.OutDir, "output directory")
	cmd.Flags().StringVar(&c.generator, "generator", cfg.Generator, "generator named in the do-not-edit banner")
	return cmd
}

func newListCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the renumbered states",
		Long: `The list command prints each state as ordinal, generated symbol and
canonical name, followed by the sentinel. With --yaml it prints the canonical
feed as a field list instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options()
			if c.asYAML {
				feed, err := dynstate.Feed(opts)
				if err != nil {
					return err
				}
				data, err := yaml.Marshal(feed)
				if err != nil {
					return fmt.Errorf("error encoding feed: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			e, err := dynstate.Build(opts)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range e.States() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t\n", s, e.Symbol(s), e.Forward(s))
			}
			fmt.Fprintf(tw, "%d\t%s\t\t\n", e.StatusNum(), e.Symbol(e.StatusNum()))
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&c.asYAML, "yaml", false, "print the canonical feed as YAML")
	return cmd
}

func newDescribeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "describe STATE...",
		Short: "Print the setter command descriptor of each state",
		Long: `The describe command prints what DescribeDynamicStateCommand returns for
each state. States may be given as canonical names, generated symbols or bare
suffixes (VK_DYNAMIC_STATE_SCISSOR, CB_DYNAMIC_STATE_SCISSOR, SCISSOR).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := dynstate.Build(c.options())
			if err != nil {
				return err
			}
			for _, arg := range args {
				s, ok := e.Parse(arg)
				if !ok {
					return fmt.Errorf("unknown dynamic state %q", arg)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.Symbol(s), e.DescribeCommand(s))
			}
			return nil
		},
	}
}

func newCheckCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report drift between the registry and the setter command table",
		Long: `The check command lists canonical states without a table entry and table
entries the registry does not define. Generation tolerates both; --strict
turns them into a failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := dynstate.Build(c.options())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			missing, stale := e.Missing(), e.Stale()
			for _, name := range missing {
				fmt.Fprintf(out, "missing from table: %s\n", name)
			}
			for _, name := range stale {
				fmt.Fprintf(out, "not in registry: %s\n", name)
			}
			if len(missing) == 0 && len(stale) == 0 {
				fmt.Fprintf(out, "table covers all %d states\n", e.Len())
				return nil
			}
			if c.strict {
				return fmt.Errorf("table drift: %d missing, %d stale", len(missing), len(stale))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&c.strict, "strict", false, "fail when the table and registry disagree")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dynstategen version %s\n", dynstateVersion)
		},
	}
}
