package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dan-strohschein/linkar-go/protocol"
)

type encoder interface {
	Encode() string
	Validate() error
}

func newEncodeCmd() *cobra.Command {
	var opts optionFlags
	cmd := &cobra.Command{
		Use:       "encode read|update|new|delete|select|schemas|properties",
		Short:     "Show how an options family is encoded",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"read", "update", "new", "delete", "select", "schemas", "properties"},
		RunE: func(cmd *cobra.Command, argv []string) error {
			enc, err := opts.family(argv[0])
			if err != nil {
				return err
			}
			if err := enc.Validate(); err != nil {
				return err
			}

			encoded := enc.Encode()
			printHeader(strings.ToUpper(argv[0]) + " options")
			printInfo(protocol.Visible(encoded))

			rows := [][]string{}
			for i, field := range strings.Split(encoded, protocol.AM) {
				rows = append(rows, []string{strconv.Itoa(i + 1), strings.ReplaceAll(field, protocol.VM, " | ")})
			}
			return printTable([]string{"AM", "Values"}, rows)
		},
	}

	fs := cmd.Flags()
	opts.bindLock(fs)
	opts.bindReadAfter(fs)
	fs.BoolVar(&opts.onlyRecordID, "only-ids", false, "return record ids only")
	opts.bindRecordID(fs)
	opts.bindListing(fs)
	fs.BoolVar(&opts.usePropertyNames, "property-names", false, "use property names")
	fs.BoolVar(&opts.dictionaries, "dictionaries-mode", false, "dictionaries schema listing")
	return cmd
}

func (o *optionFlags) family(name string) (encoder, error) {
	switch name {
	case "read":
		return o.readOptions(), nil
	case "update":
		return o.updateOptions(), nil
	case "new":
		return o.newOptions()
	case "delete":
		return o.deleteOptions()
	case "select":
		return o.selectOptions(), nil
	case "schemas":
		sch, err := o.schemasOptions()
		if err != nil {
			return nil, err
		}
		return sch, nil
	case "properties":
		return o.propertiesOptions()
	}
	return nil, fmt.Errorf("unknown options family %q", name)
}
