package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dan-strohschein/linkar-go/options"
)

// optionFlags binds the flags that build every options family.
type optionFlags struct {
	lock      bool
	readAfter bool

	calculated      bool
	conversion      bool
	formatSpec      bool
	originalRecords bool

	onlyRecordID bool
	pageSize     int
	page         int

	idType      string
	idPrefix    string
	idSeparator string
	idFormat    string
	idNumeric   bool
	idLength    int

	rowHeader        string
	rowProperties    bool
	onlyVisibles     bool
	usePropertyNames bool
	sqlMode          bool
	dictionaries     bool
}

func (o *optionFlags) bindLock(fs *pflag.FlagSet) {
	fs.BoolVar(&o.lock, "lock", false, "optimistic lock, compare against --original")
}

func (o *optionFlags) bindRead(fs *pflag.FlagSet) {
	fs.BoolVar(&o.calculated, "calculated", false, "return calculated dictionaries")
	fs.BoolVar(&o.conversion, "conversion", false, "apply output conversions")
	fs.BoolVar(&o.formatSpec, "format-spec", false, "apply dictionary formats")
	fs.BoolVar(&o.originalRecords, "original-records", false, "return the original records")
}

func (o *optionFlags) bindReadAfter(fs *pflag.FlagSet) {
	fs.BoolVar(&o.readAfter, "read-after", false, "read the records back after writing")
	o.bindRead(fs)
}

func (o *optionFlags) bindPagination(fs *pflag.FlagSet) {
	fs.IntVar(&o.pageSize, "page-size", 0, "records per page, 0 disables pagination")
	fs.IntVar(&o.page, "page", 1, "page number")
}

func (o *optionFlags) bindSelect(fs *pflag.FlagSet) {
	fs.BoolVar(&o.onlyRecordID, "only-ids", false, "return record ids only")
	o.bindPagination(fs)
	o.bindRead(fs)
}

func (o *optionFlags) bindRecordID(fs *pflag.FlagSet) {
	fs.StringVar(&o.idType, "id-type", "none", "none, linkar, random or custom")
	fs.StringVar(&o.idPrefix, "id-prefix", "", "prefix of generated ids")
	fs.StringVar(&o.idSeparator, "id-separator", "", "separator between prefix and counter")
	fs.StringVar(&o.idFormat, "id-format", "", "format spec of the counter")
	fs.BoolVar(&o.idNumeric, "id-numeric", false, "random ids are numeric")
	fs.IntVar(&o.idLength, "id-length", 0, "length of random ids")
}

func (o *optionFlags) bindListing(fs *pflag.FlagSet) {
	fs.StringVar(&o.rowHeader, "row-header", "MAINLABEL", "MAINLABEL, SHORTLABEL or NONE")
	fs.BoolVar(&o.rowProperties, "row-properties", false, "first row holds property names")
	fs.BoolVar(&o.onlyVisibles, "only-visibles", false, "only visible items")
	fs.BoolVar(&o.sqlMode, "sql-mode", false, "SQL mode listing")
	o.bindPagination(fs)
}

func (o *optionFlags) pagination() options.Pagination {
	if o.pageSize <= 0 {
		return options.NoPagination()
	}
	return options.Paginate(o.pageSize, o.page)
}

func (o *optionFlags) readOptions() *options.ReadOptions {
	return options.NewReadOptions(o.calculated, o.conversion, o.formatSpec, o.originalRecords)
}

func (o *optionFlags) updateOptions() *options.UpdateOptions {
	return options.NewUpdateOptions(o.lock, o.readAfter, o.calculated, o.conversion, o.formatSpec, o.originalRecords)
}

func (o *optionFlags) recordIDType() (options.RecordIDType, error) {
	switch strings.ToLower(o.idType) {
	case "", "none":
		return options.NoRecordID(), nil
	case "linkar":
		return options.LinkarRecordID(o.idPrefix, o.idSeparator, o.idFormat), nil
	case "random":
		return options.RandomRecordID(o.idNumeric, o.idLength), nil
	case "custom":
		return options.CustomRecordID(), nil
	}
	return options.RecordIDType{}, fmt.Errorf("unknown --id-type %q", o.idType)
}

func (o *optionFlags) newOptions() (*options.NewOptions, error) {
	idType, err := o.recordIDType()
	if err != nil {
		return nil, err
	}
	return options.NewNewOptions(idType, o.readAfter, o.calculated, o.conversion, o.formatSpec, o.originalRecords), nil
}

func (o *optionFlags) deleteOptions() (*options.DeleteOptions, error) {
	var recoverID options.RecoverIDType
	switch strings.ToLower(o.idType) {
	case "", "none":
		recoverID = options.NoRecoverID()
	case "linkar":
		recoverID = options.LinkarRecoverID(o.idPrefix, o.idSeparator)
	case "custom":
		recoverID = options.CustomRecoverID()
	default:
		return nil, fmt.Errorf("unknown --id-type %q", o.idType)
	}
	return options.NewDeleteOptions(o.lock, recoverID), nil
}

func (o *optionFlags) selectOptions() *options.SelectOptions {
	return options.NewSelectOptions(o.onlyRecordID, o.pagination(), o.calculated, o.conversion, o.formatSpec, o.originalRecords)
}

func (o *optionFlags) schemasOptions() (options.SchemasOptions, error) {
	rh, err := options.ParseRowHeaders(strings.ToUpper(o.rowHeader))
	if err != nil {
		return nil, err
	}
	switch {
	case o.dictionaries:
		return options.DictionariesSchemas(rh, o.pagination()), nil
	case o.sqlMode:
		return options.SQLModeSchemas(o.onlyVisibles, o.pagination()), nil
	}
	return options.LkSchemas(rh, o.rowProperties, o.onlyVisibles, o.pagination()), nil
}

func (o *optionFlags) propertiesOptions() (*options.PropertiesOptions, error) {
	if o.sqlMode {
		return options.SQLModeProperties(o.onlyVisibles, o.pagination()), nil
	}
	rh, err := options.ParseRowHeaders(strings.ToUpper(o.rowHeader))
	if err != nil {
		return nil, err
	}
	return options.LkProperties(rh, o.rowProperties, o.onlyVisibles, o.usePropertyNames, o.pagination()), nil
}
