package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dan-strohschein/linkar-go/client"
	"github.com/dan-strohschein/linkar-go/options"
)

func newReadCmd() *cobra.Command {
	var opts optionFlags
	var dictionaries string
	cmd := &cobra.Command{
		Use:   "read FILE RECORDS",
		Short: "Read records by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				records, err := payload(cmd, argv[1])
				if err != nil {
					return nil, nil, err
				}
				args := client.ReadArgs{
					Filename: argv[0], Records: records, Dictionaries: dictionaries,
					Options: opts.readOptions(),
					Format:  s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.Read(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.ReadAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
	cmd.Flags().StringVar(&dictionaries, "dictionaries", "", "dictionaries to return, space separated")
	opts.bindRead(cmd.Flags())
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var opts optionFlags
	var original string
	cmd := &cobra.Command{
		Use:   "update FILE RECORDS",
		Short: "Replace whole records",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				records, err := payload(cmd, argv[1])
				if err != nil {
					return nil, nil, err
				}
				args := client.UpdateArgs{
					Filename: argv[0], Records: records, OriginalRecords: original,
					Options: opts.updateOptions(),
					Format:  s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.Update(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.UpdateAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
	cmd.Flags().StringVar(&original, "original", "", "original records compared under --lock")
	opts.bindLock(cmd.Flags())
	opts.bindReadAfter(cmd.Flags())
	return cmd
}

func newUpdatePartialCmd() *cobra.Command {
	var opts optionFlags
	var original, dictionaries string
	cmd := &cobra.Command{
		Use:   "update-partial FILE RECORDS",
		Short: "Update only the given dictionaries of records",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				records, err := payload(cmd, argv[1])
				if err != nil {
					return nil, nil, err
				}
				args := client.UpdatePartialArgs{
					Filename: argv[0], Records: records, OriginalRecords: original, Dictionaries: dictionaries,
					Options: opts.updateOptions(),
					Format:  s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.UpdatePartial(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future {
						return s.client.UpdatePartialAsync(ctx, s.cred, args)
					},
					nil
			})
		},
	}
	cmd.Flags().StringVar(&original, "original", "", "original records compared under --lock")
	cmd.Flags().StringVar(&dictionaries, "dictionaries", "", "dictionaries to update, space separated")
	opts.bindLock(cmd.Flags())
	opts.bindReadAfter(cmd.Flags())
	return cmd
}

func newNewCmd() *cobra.Command {
	var opts optionFlags
	cmd := &cobra.Command{
		Use:   "new FILE RECORDS",
		Short: "Create records",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				records, err := payload(cmd, argv[1])
				if err != nil {
					return nil, nil, err
				}
				newOpts, err := opts.newOptions()
				if err != nil {
					return nil, nil, err
				}
				args := client.NewArgs{
					Filename: argv[0], Records: records, Options: newOpts,
					Format: s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.New(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.NewAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
	opts.bindRecordID(cmd.Flags())
	opts.bindReadAfter(cmd.Flags())
	return cmd
}

func newDeleteCmd() *cobra.Command {
	var opts optionFlags
	var original string
	cmd := &cobra.Command{
		Use:   "delete FILE RECORDS",
		Short: "Delete records",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				records, err := payload(cmd, argv[1])
				if err != nil {
					return nil, nil, err
				}
				delOpts, err := opts.deleteOptions()
				if err != nil {
					return nil, nil, err
				}
				args := client.DeleteArgs{
					Filename: argv[0], Records: records, OriginalRecords: original, Options: delOpts,
					Format: s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.Delete(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.DeleteAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
	cmd.Flags().StringVar(&original, "original", "", "original records compared under --lock")
	opts.bindLock(cmd.Flags())
	cmd.Flags().StringVar(&opts.idType, "recover", "none", "recover ids: none, linkar or custom")
	cmd.Flags().StringVar(&opts.idPrefix, "id-prefix", "", "prefix of recovered ids")
	cmd.Flags().StringVar(&opts.idSeparator, "id-separator", "", "separator of recovered ids")
	return cmd
}

func newSelectCmd() *cobra.Command {
	var opts optionFlags
	var where, sortBy, dicts, preSelect string
	cmd := &cobra.Command{
		Use:   "select FILE",
		Short: "Query a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				args := client.SelectArgs{
					Filename: argv[0], SelectClause: where, SortClause: sortBy, DictClause: dicts, PreSelectClause: preSelect,
					Options: opts.selectOptions(),
					Format:  s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.Select(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.SelectAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
	cmd.Flags().StringVar(&where, "where", "", "selection clause, e.g. WITH CUSTOMER = '1'")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort clause, e.g. BY CUSTOMER")
	cmd.Flags().StringVar(&dicts, "dictionaries", "", "dictionaries to return, space separated")
	cmd.Flags().StringVar(&preSelect, "pre-select", "", "statement producing the active list")
	opts.bindSelect(cmd.Flags())
	return cmd
}

func newSubroutineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subroutine NAME ARGS_NUMBER [ARGUMENTS]",
		Short: "Call a cataloged subroutine",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				n, err := strconv.Atoi(argv[1])
				if err != nil {
					return nil, nil, err
				}
				var arguments string
				if len(argv) == 3 {
					if arguments, err = payload(cmd, argv[2]); err != nil {
						return nil, nil, err
					}
				}
				args := client.SubroutineArgs{
					Name: argv[0], ArgsNumber: n, Arguments: arguments,
					Format: s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.Subroutine(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.SubroutineAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
	return cmd
}

func newConversionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversion INPUT|OUTPUT EXPRESSION CODE",
		Short: "Apply an ICONV or OCONV code",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				typ, err := options.ParseConversionType(argv[0])
				if err != nil {
					return nil, nil, err
				}
				args := client.ConversionArgs{
					Type: typ, Expression: argv[1], Code: argv[2],
					Format: s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.Conversion(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.ConversionAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
	return cmd
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format EXPRESSION SPEC",
		Short: "Apply an FMT specification",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				args := client.FormatArgs{
					Expression: argv[0], FormatSpec: argv[1],
					Format: s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.Format(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.FormatAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
}

func newDictionariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dictionaries FILE",
		Short: "List the dictionaries of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				args := client.DictionariesArgs{
					Filename: argv[0],
					Format:   s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.Dictionaries(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.DictionariesAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
}

func newExecuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "execute STATEMENT",
		Short: "Execute a database command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				statement, err := payload(cmd, argv[0])
				if err != nil {
					return nil, nil, err
				}
				args := client.ExecuteArgs{
					Statement: statement,
					Format:    s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.Execute(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.ExecuteAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				args := client.GetVersionArgs{Format: s.format, ReceiveTimeout: s.timeout}
				return func(ctx context.Context, s *session) (string, error) { return s.client.GetVersion(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.GetVersionAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
}

func newSchemasCmd() *cobra.Command {
	var opts optionFlags
	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List the schemas of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				schOpts, err := opts.schemasOptions()
				if err != nil {
					return nil, nil, err
				}
				args := client.LkSchemasArgs{
					Options: schOpts,
					Format:  s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.LkSchemas(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future { return s.client.LkSchemasAsync(ctx, s.cred, args) },
					nil
			})
		},
	}
	opts.bindListing(cmd.Flags())
	cmd.Flags().BoolVar(&opts.dictionaries, "dictionaries-mode", false, "list dictionaries instead of properties")
	return cmd
}

func newPropertiesCmd() *cobra.Command {
	var opts optionFlags
	cmd := &cobra.Command{
		Use:   "properties SCHEMA",
		Short: "List the properties of a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				propOpts, err := opts.propertiesOptions()
				if err != nil {
					return nil, nil, err
				}
				args := client.LkPropertiesArgs{
					Filename: argv[0], Options: propOpts,
					Format: s.format, CustomVars: s.customVars, ReceiveTimeout: s.timeout,
				}
				return func(ctx context.Context, s *session) (string, error) { return s.client.LkProperties(ctx, s.cred, args) },
					func(ctx context.Context, s *session) *client.Future {
						return s.client.LkPropertiesAsync(ctx, s.cred, args)
					},
					nil
			})
		},
	}
	opts.bindListing(cmd.Flags())
	cmd.Flags().BoolVar(&opts.usePropertyNames, "property-names", false, "use property names instead of dictionary names")
	return cmd
}

func newResetCommonBlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-common-blocks",
		Short: "Reset the COMMON variables of the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd, func(s *session) (syncCall, asyncCall, error) {
				args := client.ResetCommonBlocksArgs{Format: s.format, ReceiveTimeout: s.timeout}
				return func(ctx context.Context, s *session) (string, error) {
						return s.client.ResetCommonBlocks(ctx, s.cred, args)
					},
					func(ctx context.Context, s *session) *client.Future {
						return s.client.ResetCommonBlocksAsync(ctx, s.cred, args)
					},
					nil
			})
		},
	}
}
