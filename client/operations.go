package client

import (
	"context"
	"strconv"

	"github.com/dan-strohschein/linkar-go/format"
	"github.com/dan-strohschein/linkar-go/options"
	"github.com/dan-strohschein/linkar-go/protocol"
)

// Every args struct below is usable as its zero value apart from the
// payload fields: a nil Options encodes the default options, Format
// defaults to XML, CustomVars to "" and ReceiveTimeout to 0 (wait
// indefinitely).

// ReadArgs are the arguments of Read.
type ReadArgs struct {
	Filename string
	// Records holds the ids to read, in the chosen input format.
	Records string
	// Dictionaries lists the dictionary names to return, space separated.
	// Empty returns all.
	Dictionaries   string
	Options        *options.ReadOptions
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// Read reads records from a file.
func (c *Client) Read(ctx context.Context, cred protocol.Credential, args ReadArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpRead,
		Credential:     cred,
		Filename:       args.Filename,
		Payload:        args.Records,
		Clauses:        []string{args.Dictionaries},
		InputFormat:    format.Input(args.Format),
		OutputFormat:   format.Data(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, args.Options)
}

// ReadRecords reads records with every other argument defaulted.
func (c *Client) ReadRecords(ctx context.Context, cred protocol.Credential, filename, records string) (string, error) {
	return c.Read(ctx, cred, ReadArgs{Filename: filename, Records: records})
}

// UpdateArgs are the arguments of Update.
type UpdateArgs struct {
	Filename string
	Records  string
	// OriginalRecords is the snapshot compared by the server when the
	// optimistic lock is set. It is forwarded verbatim.
	OriginalRecords string
	Options         *options.UpdateOptions
	Format          format.Format
	CustomVars      string
	ReceiveTimeout  int
}

// Update replaces whole records.
func (c *Client) Update(ctx context.Context, cred protocol.Credential, args UpdateArgs) (string, error) {
	c.warnMissingSnapshot(protocol.OpUpdate, args.Options.OptimisticLock(), args.OriginalRecords)
	req := &protocol.Request{
		Operation:      protocol.OpUpdate,
		Credential:     cred,
		Filename:       args.Filename,
		Payload:        args.Records,
		Snapshot:       args.OriginalRecords,
		InputFormat:    format.Input(args.Format),
		OutputFormat:   format.Data(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, args.Options)
}

// UpdateRecords updates records with every other argument defaulted.
func (c *Client) UpdateRecords(ctx context.Context, cred protocol.Credential, filename, records string) (string, error) {
	return c.Update(ctx, cred, UpdateArgs{Filename: filename, Records: records})
}

// UpdatePartialArgs are the arguments of UpdatePartial.
type UpdatePartialArgs struct {
	Filename        string
	Records         string
	OriginalRecords string
	// Dictionaries names the fields present in Records, space separated.
	Dictionaries   string
	Options        *options.UpdateOptions
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// UpdatePartial updates only the named fields of records.
func (c *Client) UpdatePartial(ctx context.Context, cred protocol.Credential, args UpdatePartialArgs) (string, error) {
	c.warnMissingSnapshot(protocol.OpUpdatePartial, args.Options.OptimisticLock(), args.OriginalRecords)
	req := &protocol.Request{
		Operation:      protocol.OpUpdatePartial,
		Credential:     cred,
		Filename:       args.Filename,
		Payload:        args.Records,
		Snapshot:       args.OriginalRecords,
		Clauses:        []string{args.Dictionaries},
		InputFormat:    format.Input(args.Format),
		OutputFormat:   format.Data(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, args.Options)
}

// UpdatePartialRecords updates the named fields with every other argument
// defaulted.
func (c *Client) UpdatePartialRecords(ctx context.Context, cred protocol.Credential, filename, records, dictionaries string) (string, error) {
	return c.UpdatePartial(ctx, cred, UpdatePartialArgs{Filename: filename, Records: records, Dictionaries: dictionaries})
}

// NewArgs are the arguments of New.
type NewArgs struct {
	Filename       string
	Records        string
	Options        *options.NewOptions
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// New creates records.
func (c *Client) New(ctx context.Context, cred protocol.Credential, args NewArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpNew,
		Credential:     cred,
		Filename:       args.Filename,
		Payload:        args.Records,
		InputFormat:    format.Input(args.Format),
		OutputFormat:   format.Data(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, args.Options)
}

// NewRecords creates records with every other argument defaulted.
func (c *Client) NewRecords(ctx context.Context, cred protocol.Credential, filename, records string) (string, error) {
	return c.New(ctx, cred, NewArgs{Filename: filename, Records: records})
}

// DeleteArgs are the arguments of Delete.
type DeleteArgs struct {
	Filename        string
	Records         string
	OriginalRecords string
	Options         *options.DeleteOptions
	Format          format.Format
	CustomVars      string
	ReceiveTimeout  int
}

// Delete deletes records.
func (c *Client) Delete(ctx context.Context, cred protocol.Credential, args DeleteArgs) (string, error) {
	c.warnMissingSnapshot(protocol.OpDelete, args.Options.OptimisticLock(), args.OriginalRecords)
	req := &protocol.Request{
		Operation:      protocol.OpDelete,
		Credential:     cred,
		Filename:       args.Filename,
		Payload:        args.Records,
		Snapshot:       args.OriginalRecords,
		InputFormat:    format.Input(args.Format),
		OutputFormat:   format.Plain(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, args.Options)
}

// DeleteRecords deletes records with every other argument defaulted.
func (c *Client) DeleteRecords(ctx context.Context, cred protocol.Credential, filename, records string) (string, error) {
	return c.Delete(ctx, cred, DeleteArgs{Filename: filename, Records: records})
}

// SelectArgs are the arguments of Select.
type SelectArgs struct {
	Filename string
	// SelectClause is the selection criteria, e.g. WITH CUSTOMER = '1'.
	// Empty selects every record.
	SelectClause string
	// SortClause is the sort criteria, e.g. BY CUSTOMER.
	SortClause string
	// DictClause lists the dictionaries to return, space separated.
	DictClause string
	// PreSelectClause is a statement whose result list feeds the select.
	PreSelectClause string
	Options         *options.SelectOptions
	Format          format.Format
	CustomVars      string
	ReceiveTimeout  int
}

// Select queries a file.
func (c *Client) Select(ctx context.Context, cred protocol.Credential, args SelectArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpSelect,
		Credential:     cred,
		Filename:       args.Filename,
		Clauses:        []string{args.SelectClause, args.SortClause, args.DictClause, args.PreSelectClause},
		OutputFormat:   format.Data(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, args.Options)
}

// SelectRecords selects every record of a file with defaults.
func (c *Client) SelectRecords(ctx context.Context, cred protocol.Credential, filename string) (string, error) {
	return c.Select(ctx, cred, SelectArgs{Filename: filename})
}

// SubroutineArgs are the arguments of Subroutine.
type SubroutineArgs struct {
	Name       string
	ArgsNumber int
	// Arguments are the subroutine arguments in the chosen input format.
	Arguments      string
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// Subroutine calls a cataloged subroutine.
func (c *Client) Subroutine(ctx context.Context, cred protocol.Credential, args SubroutineArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpSubroutine,
		Credential:     cred,
		Payload:        args.Arguments,
		Clauses:        []string{args.Name, strconv.Itoa(args.ArgsNumber)},
		InputFormat:    format.Input(args.Format),
		OutputFormat:   format.Plain(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, nil)
}

// CallSubroutine calls a subroutine with every other argument defaulted.
func (c *Client) CallSubroutine(ctx context.Context, cred protocol.Credential, name string, argsNumber int, arguments string) (string, error) {
	return c.Subroutine(ctx, cred, SubroutineArgs{Name: name, ArgsNumber: argsNumber, Arguments: arguments})
}

// ConversionArgs are the arguments of Conversion.
type ConversionArgs struct {
	// Type is INPUT or OUTPUT. It has no default.
	Type options.ConversionType
	// Expression holds the values to convert.
	Expression     string
	Code           string
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// Conversion applies an ICONV or OCONV conversion code.
func (c *Client) Conversion(ctx context.Context, cred protocol.Credential, args ConversionArgs) (string, error) {
	if !args.Type.Valid() {
		return "", &options.ConfigError{Option: "Conversion", Field: "Type", Value: string(args.Type), Reason: "expected INPUT or OUTPUT"}
	}
	req := &protocol.Request{
		Operation:      protocol.OpConversion,
		Credential:     cred,
		Payload:        args.Expression,
		Clauses:        []string{string(args.Type), args.Code},
		OutputFormat:   format.Plain(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, nil)
}

// Convert applies a conversion with every other argument defaulted.
func (c *Client) Convert(ctx context.Context, cred protocol.Credential, typ options.ConversionType, expression, code string) (string, error) {
	return c.Conversion(ctx, cred, ConversionArgs{Type: typ, Expression: expression, Code: code})
}

// FormatArgs are the arguments of Format.
type FormatArgs struct {
	Expression string
	// FormatSpec is the FMT specification, e.g. "R#10".
	FormatSpec     string
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// Format applies an FMT specification.
func (c *Client) Format(ctx context.Context, cred protocol.Credential, args FormatArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpFormat,
		Credential:     cred,
		Payload:        args.Expression,
		Clauses:        []string{args.FormatSpec},
		OutputFormat:   format.Plain(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, nil)
}

// FormatExpression formats with every other argument defaulted.
func (c *Client) FormatExpression(ctx context.Context, cred protocol.Credential, expression, formatSpec string) (string, error) {
	return c.Format(ctx, cred, FormatArgs{Expression: expression, FormatSpec: formatSpec})
}

// DictionariesArgs are the arguments of Dictionaries.
type DictionariesArgs struct {
	Filename       string
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// Dictionaries lists the dictionaries of a file.
func (c *Client) Dictionaries(ctx context.Context, cred protocol.Credential, args DictionariesArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpDictionaries,
		Credential:     cred,
		Filename:       args.Filename,
		OutputFormat:   format.Plain(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, nil)
}

// ListDictionaries lists dictionaries with every other argument defaulted.
func (c *Client) ListDictionaries(ctx context.Context, cred protocol.Credential, filename string) (string, error) {
	return c.Dictionaries(ctx, cred, DictionariesArgs{Filename: filename})
}

// ExecuteArgs are the arguments of Execute.
type ExecuteArgs struct {
	// Statement is a database command, e.g. "WHO".
	Statement      string
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// Execute runs a database command.
func (c *Client) Execute(ctx context.Context, cred protocol.Credential, args ExecuteArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpExecute,
		Credential:     cred,
		Payload:        args.Statement,
		OutputFormat:   format.Plain(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, nil)
}

// ExecuteStatement runs a command with every other argument defaulted.
func (c *Client) ExecuteStatement(ctx context.Context, cred protocol.Credential, statement string) (string, error) {
	return c.Execute(ctx, cred, ExecuteArgs{Statement: statement})
}

// GetVersionArgs are the arguments of GetVersion.
type GetVersionArgs struct {
	Format         format.Format
	ReceiveTimeout int
}

// GetVersion returns the server component versions.
func (c *Client) GetVersion(ctx context.Context, cred protocol.Credential, args GetVersionArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpVersion,
		Credential:     cred,
		OutputFormat:   format.Plain(args.Format),
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, nil)
}

// ServerVersion returns the server versions with defaults.
func (c *Client) ServerVersion(ctx context.Context, cred protocol.Credential) (string, error) {
	return c.GetVersion(ctx, cred, GetVersionArgs{})
}

// LkSchemasArgs are the arguments of LkSchemas.
type LkSchemasArgs struct {
	// Options is one of the three schema shapes; nil is DefaultSchemas.
	Options        options.SchemasOptions
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// schemasValue adapts a possibly nil SchemasOptions interface.
type schemasValue struct{ o options.SchemasOptions }

func (s schemasValue) Encode() string  { return options.EncodeSchemas(s.o) }
func (s schemasValue) Validate() error { return options.ValidateSchemas(s.o) }

// LkSchemas lists the schemas of the account.
func (c *Client) LkSchemas(ctx context.Context, cred protocol.Credential, args LkSchemasArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpLkSchemas,
		Credential:     cred,
		OutputFormat:   format.Schemas(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, schemasValue{args.Options})
}

// Schemas lists schemas with defaults.
func (c *Client) Schemas(ctx context.Context, cred protocol.Credential) (string, error) {
	return c.LkSchemas(ctx, cred, LkSchemasArgs{})
}

// LkPropertiesArgs are the arguments of LkProperties.
type LkPropertiesArgs struct {
	// Filename is the schema whose properties are listed.
	Filename       string
	Options        *options.PropertiesOptions
	Format         format.Format
	CustomVars     string
	ReceiveTimeout int
}

// LkProperties lists the properties of a schema.
func (c *Client) LkProperties(ctx context.Context, cred protocol.Credential, args LkPropertiesArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpLkProperties,
		Credential:     cred,
		Filename:       args.Filename,
		OutputFormat:   format.Properties(args.Format),
		CustomVars:     args.CustomVars,
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, args.Options)
}

// Properties lists the properties of a schema with defaults.
func (c *Client) Properties(ctx context.Context, cred protocol.Credential, filename string) (string, error) {
	return c.LkProperties(ctx, cred, LkPropertiesArgs{Filename: filename})
}

// ResetCommonBlocksArgs are the arguments of ResetCommonBlocks.
type ResetCommonBlocksArgs struct {
	Format         format.Format
	ReceiveTimeout int
}

// ResetCommonBlocks resets the COMMON variables of the server session.
func (c *Client) ResetCommonBlocks(ctx context.Context, cred protocol.Credential, args ResetCommonBlocksArgs) (string, error) {
	req := &protocol.Request{
		Operation:      protocol.OpResetCommonBlocks,
		Credential:     cred,
		OutputFormat:   format.Plain(args.Format),
		ReceiveTimeout: args.ReceiveTimeout,
	}
	return c.execute(ctx, req, nil)
}

// ResetCommon resets the COMMON variables with defaults.
func (c *Client) ResetCommon(ctx context.Context, cred protocol.Credential) (string, error) {
	return c.ResetCommonBlocks(ctx, cred, ResetCommonBlocksArgs{})
}
