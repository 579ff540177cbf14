package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan-strohschein/linkar-go/format"
	"github.com/dan-strohschein/linkar-go/options"
	"github.com/dan-strohschein/linkar-go/protocol"
	"github.com/dan-strohschein/linkar-go/transport/mock"
)

var testCred = protocol.NewCredential("127.0.0.1", "QMEP1", 11300, "admin", "admin")

func newTestClient(t *testing.T) (*Client, *mock.MockTransport) {
	t.Helper()
	tr := mock.NewMockTransport().WithResponse("OK")
	opts := DefaultOptions()
	opts.Logger = NewNoopLogger()
	return New(tr, &opts), tr
}

// withoutID copies a request and clears the per-call ID so two calls can
// be compared.
func withoutID(req *protocol.Request) protocol.Request {
	cp := *req
	cp.ID = ""
	return cp
}

func TestOperationRequests(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(c *Client) (string, error)
		op      protocol.OperationCode
		input   protocol.FormatCode
		output  protocol.FormatCode
		options string
		check   func(t *testing.T, req *protocol.Request)
	}{
		{
			name:    "read",
			call:    func(c *Client) (string, error) { return c.ReadRecords(ctx, testCred, "CUSTOMERS", "2") },
			op:      protocol.OpRead,
			input:   protocol.DataFormatXML,
			output:  protocol.DataFormatCRUXML,
			options: "0þ0þ0þ0",
			check: func(t *testing.T, req *protocol.Request) {
				assert.Equal(t, "CUSTOMERS", req.Filename)
				assert.Equal(t, "2", req.Payload)
				assert.Equal(t, []string{""}, req.Clauses)
			},
		},
		{
			name:    "update",
			call:    func(c *Client) (string, error) { return c.UpdateRecords(ctx, testCred, "CUSTOMERS", "<r/>") },
			op:      protocol.OpUpdate,
			input:   protocol.DataFormatXML,
			output:  protocol.DataFormatCRUXML,
			options: "0þ0þ0þ0þ0þ0",
		},
		{
			name: "update partial",
			call: func(c *Client) (string, error) {
				return c.UpdatePartialRecords(ctx, testCred, "CUSTOMERS", "<r/>", "NAME ADDR")
			},
			op:      protocol.OpUpdatePartial,
			input:   protocol.DataFormatXML,
			output:  protocol.DataFormatCRUXML,
			options: "0þ0þ0þ0þ0þ0",
			check: func(t *testing.T, req *protocol.Request) {
				assert.Equal(t, []string{"NAME ADDR"}, req.Clauses)
			},
		},
		{
			name:    "new",
			call:    func(c *Client) (string, error) { return c.NewRecords(ctx, testCred, "CUSTOMERS", "<r/>") },
			op:      protocol.OpNew,
			input:   protocol.DataFormatXML,
			output:  protocol.DataFormatCRUXML,
			options: "0ýýýþ0ý0ý0þ0þ0þ0þ0þ0þ0",
		},
		{
			name:    "delete",
			call:    func(c *Client) (string, error) { return c.DeleteRecords(ctx, testCred, "CUSTOMERS", "<r/>") },
			op:      protocol.OpDelete,
			input:   protocol.DataFormatXML,
			output:  protocol.DataFormatXML,
			options: "0þ0ýýþ0",
		},
		{
			name:    "select",
			call:    func(c *Client) (string, error) { return c.SelectRecords(ctx, testCred, "CUSTOMERS") },
			op:      protocol.OpSelect,
			output:  protocol.DataFormatCRUXML,
			options: "0þ0ý10ý1þ0þ0þ0þ0",
			check: func(t *testing.T, req *protocol.Request) {
				assert.Equal(t, []string{"", "", "", ""}, req.Clauses)
			},
		},
		{
			name:   "subroutine",
			call:   func(c *Client) (string, error) { return c.CallSubroutine(ctx, testCred, "SUB.DEMO", 3, "0þ1þ2") },
			op:     protocol.OpSubroutine,
			input:  protocol.DataFormatXML,
			output: protocol.DataFormatXML,
			check: func(t *testing.T, req *protocol.Request) {
				assert.Equal(t, []string{"SUB.DEMO", "3"}, req.Clauses)
				assert.Equal(t, "0þ1þ2", req.Payload)
			},
		},
		{
			name: "conversion",
			call: func(c *Client) (string, error) {
				return c.Convert(ctx, testCred, options.ConversionOutput, "31-12-2017", "D2-")
			},
			op:     protocol.OpConversion,
			output: protocol.DataFormatXML,
			check: func(t *testing.T, req *protocol.Request) {
				assert.Equal(t, []string{"O", "D2-"}, req.Clauses)
			},
		},
		{
			name:   "format",
			call:   func(c *Client) (string, error) { return c.FormatExpression(ctx, testCred, "1000", "R#10") },
			op:     protocol.OpFormat,
			output: protocol.DataFormatXML,
			check: func(t *testing.T, req *protocol.Request) {
				assert.Equal(t, []string{"R#10"}, req.Clauses)
			},
		},
		{
			name:   "dictionaries",
			call:   func(c *Client) (string, error) { return c.ListDictionaries(ctx, testCred, "CUSTOMERS") },
			op:     protocol.OpDictionaries,
			output: protocol.DataFormatXML,
		},
		{
			name:   "execute",
			call:   func(c *Client) (string, error) { return c.ExecuteStatement(ctx, testCred, "WHO") },
			op:     protocol.OpExecute,
			output: protocol.DataFormatXML,
		},
		{
			name:   "version",
			call:   func(c *Client) (string, error) { return c.ServerVersion(ctx, testCred) },
			op:     protocol.OpVersion,
			output: protocol.DataFormatXML,
		},
		{
			name:    "schemas",
			call:    func(c *Client) (string, error) { return c.Schemas(ctx, testCred) },
			op:      protocol.OpLkSchemas,
			output:  protocol.DataFormatSchXML,
			options: "1þ0þ0þ0þ1þ0ý10ý1",
		},
		{
			name:    "properties",
			call:    func(c *Client) (string, error) { return c.Properties(ctx, testCred, "CUSTOMERS") },
			op:      protocol.OpLkProperties,
			output:  protocol.DataFormatSchPropXML,
			options: "0þ0þ0þ1þ0ý10ý1",
		},
		{
			name:   "reset common blocks",
			call:   func(c *Client) (string, error) { return c.ResetCommon(ctx, testCred) },
			op:     protocol.OpResetCommonBlocks,
			output: protocol.DataFormatXML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := newTestClient(t)

			resp, err := tt.call(c)
			require.NoError(t, err)
			assert.Equal(t, "OK", resp)

			req := tr.LastRequest()
			require.NotNil(t, req)
			assert.Equal(t, tt.op, req.Operation)
			assert.Equal(t, testCred, req.Credential)
			assert.Equal(t, tt.input, req.InputFormat)
			assert.Equal(t, tt.output, req.OutputFormat)
			assert.Equal(t, tt.options, req.Options)
			assert.Equal(t, "", req.CustomVars)
			assert.Equal(t, 0, req.ReceiveTimeout)
			assert.NotEmpty(t, req.ID)
			if tt.check != nil {
				tt.check(t, req)
			}
		})
	}
}

func TestShortFormsMatchExplicitDefaults(t *testing.T) {
	ctx := context.Background()

	pairs := []struct {
		name     string
		short    func(c *Client) (string, error)
		explicit func(c *Client) (string, error)
	}{
		{
			"read",
			func(c *Client) (string, error) { return c.ReadRecords(ctx, testCred, "F", "1") },
			func(c *Client) (string, error) {
				return c.Read(ctx, testCred, ReadArgs{
					Filename: "F", Records: "1", Dictionaries: "",
					Options: options.DefaultReadOptions(), Format: format.XML,
					CustomVars: "", ReceiveTimeout: 0,
				})
			},
		},
		{
			"update",
			func(c *Client) (string, error) { return c.UpdateRecords(ctx, testCred, "F", "R") },
			func(c *Client) (string, error) {
				return c.Update(ctx, testCred, UpdateArgs{Filename: "F", Records: "R", Options: options.DefaultUpdateOptions()})
			},
		},
		{
			"new",
			func(c *Client) (string, error) { return c.NewRecords(ctx, testCred, "F", "R") },
			func(c *Client) (string, error) {
				return c.New(ctx, testCred, NewArgs{Filename: "F", Records: "R", Options: options.DefaultNewOptions()})
			},
		},
		{
			"delete",
			func(c *Client) (string, error) { return c.DeleteRecords(ctx, testCred, "F", "R") },
			func(c *Client) (string, error) {
				return c.Delete(ctx, testCred, DeleteArgs{Filename: "F", Records: "R", Options: options.DefaultDeleteOptions()})
			},
		},
		{
			"select",
			func(c *Client) (string, error) { return c.SelectRecords(ctx, testCred, "F") },
			func(c *Client) (string, error) {
				return c.Select(ctx, testCred, SelectArgs{Filename: "F", Options: options.DefaultSelectOptions()})
			},
		},
		{
			"schemas",
			func(c *Client) (string, error) { return c.Schemas(ctx, testCred) },
			func(c *Client) (string, error) {
				return c.LkSchemas(ctx, testCred, LkSchemasArgs{Options: options.DefaultSchemas()})
			},
		},
		{
			"properties",
			func(c *Client) (string, error) { return c.Properties(ctx, testCred, "F") },
			func(c *Client) (string, error) {
				return c.LkProperties(ctx, testCred, LkPropertiesArgs{Filename: "F", Options: options.DefaultProperties()})
			},
		},
		{
			"version",
			func(c *Client) (string, error) { return c.ServerVersion(ctx, testCred) },
			func(c *Client) (string, error) {
				return c.GetVersion(ctx, testCred, GetVersionArgs{Format: format.XML, ReceiveTimeout: 0})
			},
		},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			c, tr := newTestClient(t)
			_, err := p.short(c)
			require.NoError(t, err)
			_, err = p.explicit(c)
			require.NoError(t, err)

			history := tr.GetHistory()
			require.Len(t, history, 2)
			assert.Equal(t, withoutID(history[0]), withoutID(history[1]))
			assert.NotEqual(t, history[0].ID, history[1].ID)
		})
	}
}

func TestFormatSelectionPerOperation(t *testing.T) {
	ctx := context.Background()
	c, tr := newTestClient(t)

	_, err := c.Read(ctx, testCred, ReadArgs{Filename: "F", Records: "1", Format: format.JSONDict})
	require.NoError(t, err)
	req := tr.LastRequest()
	assert.Equal(t, protocol.DataFormatJSON, req.InputFormat)
	assert.Equal(t, protocol.DataFormatCRUJSONDict, req.OutputFormat)

	_, err = c.LkProperties(ctx, testCred, LkPropertiesArgs{Filename: "F", Format: format.JSONDict})
	require.NoError(t, err)
	assert.Equal(t, protocol.DataFormatSchPropJSONDict, tr.LastRequest().OutputFormat)
	assert.Equal(t, 7, tr.LastRequest().OutputFormat.Code())

	_, err = c.LkSchemas(ctx, testCred, LkSchemasArgs{Format: format.JSONSch})
	require.NoError(t, err)
	assert.Equal(t, protocol.DataFormatSchJSON, tr.LastRequest().OutputFormat)

	_, err = c.Execute(ctx, testCred, ExecuteArgs{Statement: "WHO", Format: format.JSONSch})
	require.NoError(t, err)
	assert.Equal(t, protocol.DataFormatJSON, tr.LastRequest().OutputFormat)
}

func TestCanonicalArgumentsForwarded(t *testing.T) {
	c, tr := newTestClient(t)

	_, err := c.Select(context.Background(), testCred, SelectArgs{
		Filename:        "CUSTOMERS",
		SelectClause:    "WITH CITY = 'MADRID'",
		SortClause:      "BY NAME",
		DictClause:      "NAME CITY",
		PreSelectClause: "SELECT CUSTOMERS",
		Options:         options.NewSelectOptions(false, options.Paginate(20, 2), true, false, false, false),
		CustomVars:      "X",
		ReceiveTimeout:  30,
	})
	require.NoError(t, err)

	req := tr.LastRequest()
	assert.Equal(t, []string{"WITH CITY = 'MADRID'", "BY NAME", "NAME CITY", "SELECT CUSTOMERS"}, req.Clauses)
	assert.Equal(t, "0þ1ý20ý2þ1þ0þ0þ0", req.Options)
	assert.Equal(t, "X", req.CustomVars)
	assert.Equal(t, 30, req.ReceiveTimeout)
}

func TestTransportErrorPropagatesUnchanged(t *testing.T) {
	want := protocol.TimeoutError("no response in 5s", nil)
	c, tr := newTestClient(t)
	tr.WithError(want)

	_, err := c.ReadRecords(context.Background(), testCred, "F", "1")
	require.Error(t, err)
	assert.Same(t, want, err)
	assert.True(t, errors.Is(err, protocol.ErrTimeout))
}

func TestInvalidOptionsNeverReachTransport(t *testing.T) {
	c, tr := newTestClient(t)

	_, err := c.Select(context.Background(), testCred, SelectArgs{
		Filename: "F",
		Options:  options.NewSelectOptions(false, options.Paginate(0, 1), false, false, false, false),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, options.ErrInvalidOption))
	assert.Equal(t, 0, tr.GetCallCount())

	_, err = c.Conversion(context.Background(), testCred, ConversionArgs{Expression: "1", Code: "D"})
	assert.True(t, errors.Is(err, options.ErrInvalidOption))
	assert.Equal(t, 0, tr.GetCallCount())
}

func TestSkipOptionValidation(t *testing.T) {
	tr := mock.NewMockTransport()
	c := New(tr, &ClientOptions{Logger: NewNoopLogger(), SkipOptionValidation: true})

	_, err := c.LkSchemas(context.Background(), testCred, LkSchemasArgs{
		Options: options.LkSchemas(options.MainLabel, false, false, options.Paginate(0, 0)),
	})
	require.NoError(t, err)
	assert.Equal(t, "1þ0þ0þ0þ1þ1ý0ý0", tr.LastRequest().Options)

	_, err = c.Convert(context.Background(), testCred, options.ConversionType("X"), "1", "D2/")
	assert.ErrorIs(t, err, options.ErrInvalidOption)
	assert.Equal(t, 1, tr.GetCallCount())
}

func TestOptimisticLockSnapshotPassThrough(t *testing.T) {
	ctx := context.Background()
	snapshot := "<record><ID>1</ID><NAME>OLD</NAME></record>"

	c, tr := newTestClient(t)
	_, err := c.Update(ctx, testCred, UpdateArgs{
		Filename:        "CUSTOMERS",
		Records:         "<record><ID>1</ID><NAME>NEW</NAME></record>",
		OriginalRecords: snapshot,
		Options:         options.UpdateWithLock(true),
	})
	require.NoError(t, err)
	req := tr.LastRequest()
	assert.Equal(t, snapshot, req.Snapshot)
	assert.Equal(t, "1þ0þ0þ0þ0þ0", req.Options)
	assert.Contains(t, protocol.ComposeArguments(req), snapshot)

	_, err = c.Delete(ctx, testCred, DeleteArgs{
		Filename:        "CUSTOMERS",
		Records:         "1",
		OriginalRecords: snapshot,
		Options:         options.NewDeleteOptions(true, options.NoRecoverID()),
	})
	require.NoError(t, err)
	assert.Equal(t, snapshot, tr.LastRequest().Snapshot)

	_, err = c.UpdatePartial(ctx, testCred, UpdatePartialArgs{
		Filename:        "CUSTOMERS",
		Records:         "1",
		OriginalRecords: snapshot,
		Dictionaries:    "NAME",
		Options:         options.UpdateWithLock(true),
	})
	require.NoError(t, err)
	assert.Equal(t, snapshot, tr.LastRequest().Snapshot)
}

func TestUnlockedWriteNeedsNoSnapshot(t *testing.T) {
	c, tr := newTestClient(t)

	_, err := c.Update(context.Background(), testCred, UpdateArgs{Filename: "F", Records: "R"})
	require.NoError(t, err)
	assert.Equal(t, "", tr.LastRequest().Snapshot)

	// Lock set without a snapshot is still sent.
	_, err = c.Update(context.Background(), testCred, UpdateArgs{Filename: "F", Records: "R", Options: options.UpdateWithLock(true)})
	require.NoError(t, err)
	assert.Equal(t, 2, tr.GetCallCount())
}

func TestRequestIDFromContext(t *testing.T) {
	c, tr := newTestClient(t)

	ctx := WithRequestID(context.Background(), "fixed-id")
	_, err := c.ServerVersion(ctx, testCred)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", tr.LastRequest().ID)
	assert.Equal(t, "fixed-id", RequestIDField(ctx).Value)
	assert.Equal(t, "unknown", RequestIDField(context.Background()).Value)
}

func TestDebugInfo(t *testing.T) {
	c, _ := newTestClient(t)
	c.EnableDebugMode()
	assert.True(t, c.IsDebugMode())

	_, err := c.ServerVersion(context.Background(), testCred)
	require.NoError(t, err)

	info := c.GetDebugInfo()
	assert.Equal(t, Version, info["version"])
	metrics, ok := info["transportMetrics"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int64(1), metrics["totalRequests"])
	assert.Contains(t, c.DumpDebugInfoJSON(), `"debugMode": true`)

	c.DisableDebugMode()
	assert.False(t, c.IsDebugMode())
}

func TestSetLogLevelConcurrentWithDebugInfo(t *testing.T) {
	c, _ := newTestClient(t)
	assert.Equal(t, "INFO", c.LogLevel())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			c.SetLogLevel("DEBUG")
		}
	}()
	for i := 0; i < 100; i++ {
		_ = c.GetDebugInfo()
	}
	<-done

	c.SetLogLevel("WARN")
	opts, ok := c.GetDebugInfo()["options"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "WARN", opts["logLevel"])
}
