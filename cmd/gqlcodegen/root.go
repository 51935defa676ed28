package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/gqlcodegen/compiler"
	"github.com/syssam/gqlcodegen/compiler/gen"
)

const defaultConfigFile = "gqlcodegen.yaml"

type rootOptions struct {
	config      string
	outputDir   string
	language    string
	templateDir string
	override    string
	verbose     bool
	watch       bool
}

// NewRootCmd creates the gqlcodegen command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gqlcodegen [schema files or directories...]",
		Short: "Generate source code from GraphQL schemas",
		Long: `Generate data classes, client request/response classes and server API
interfaces from GraphQL schema files.

Options are read from gqlcodegen.yaml, then GQLCODEGEN_* environment
variables, then flags.`,
		Example: `  # Generate Java sources with the options of gqlcodegen.yaml
  gqlcodegen schema/

  # Generate into a custom directory and regenerate on change
  gqlcodegen -o build/generated --watch schema/*.graphqls`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", defaultConfigFile, "Path to the config file")
	cmd.Flags().StringVarP(&opts.outputDir, "out", "o", "", "Output directory")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", fmt.Sprintf("Target language (%s)", joinLanguages()))
	cmd.Flags().StringVar(&opts.templateDir, "templates", "", "Directory of templates overriding the embedded ones")
	cmd.Flags().StringVar(&opts.override, "override", "", "Path to a mapping config applied over the configured mapping")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate when a schema file changes")

	cmd.AddCommand(newLanguagesCmd())
	return cmd
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported target languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range gen.Languages() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	cfg, _, err := loadConfig(opts.config, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	applyFlags(cfg, opts, args)
	if len(cfg.Schemas) == 0 {
		return fmt.Errorf("no schema files; pass them as arguments or set schemas in %s", opts.config)
	}
	run := func() error {
		return generate(cmd, cfg, logger)
	}
	if err := run(); err != nil {
		if !opts.watch {
			return err
		}
		logger.Error("generation failed", "error", err)
	}
	if !opts.watch {
		return nil
	}
	return watch(cmd.Context(), cfg.Schemas, logger, run)
}

func applyFlags(cfg *Config, opts *rootOptions, args []string) {
	if len(args) > 0 {
		cfg.Schemas = args
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.language != "" {
		cfg.Language = opts.language
	}
	if opts.templateDir != "" {
		cfg.TemplateDir = opts.templateDir
	}
	if opts.override != "" {
		cfg.Override = opts.override
	}
}

func generate(cmd *cobra.Command, cfg *Config, logger *slog.Logger) error {
	lang, err := gen.LanguageByName(cfg.Language)
	if err != nil {
		return err
	}
	files, err := schemaFiles(cfg.Schemas)
	if err != nil {
		return err
	}
	genOpts := []gen.GeneratorOption{gen.WithLanguage(lang)}
	if cfg.Override != "" {
		genOpts = append(genOpts, gen.WithSupplier(gen.YAMLSupplier{Path: cfg.Override}))
	}
	opts := []compiler.Option{
		compiler.WithLogger(logger),
		compiler.WithGeneratorOptions(genOpts...),
	}
	if cfg.TemplateDir != "" {
		opts = append(opts, compiler.WithTemplateDir(cfg.TemplateDir))
	}
	paths, err := compiler.Generate(cmd.Context(), &cfg.Mapping, cfg.OutputDir, files, opts...)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Debug("wrote file", "path", p)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func joinLanguages() string {
	var s string
	for i, name := range gen.Languages() {
		if i > 0 {
			s += ", "
		}
		s += name
	}
	return s
}
