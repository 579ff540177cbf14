package client

import (
	"context"

	"github.com/dan-strohschein/linkar-go/protocol"
)

// The Async methods run the synchronous operation on the client's
// Executor and return at once. A failure completes the Future with an
// *AsyncError wrapping the error the synchronous call returned.

// ReadAsync is the asynchronous form of Read.
func (c *Client) ReadAsync(ctx context.Context, cred protocol.Credential, args ReadArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpRead, func(ctx context.Context) (string, error) {
		return c.Read(ctx, cred, args)
	})
}

// UpdateAsync is the asynchronous form of Update.
func (c *Client) UpdateAsync(ctx context.Context, cred protocol.Credential, args UpdateArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpUpdate, func(ctx context.Context) (string, error) {
		return c.Update(ctx, cred, args)
	})
}

// UpdatePartialAsync is the asynchronous form of UpdatePartial.
func (c *Client) UpdatePartialAsync(ctx context.Context, cred protocol.Credential, args UpdatePartialArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpUpdatePartial, func(ctx context.Context) (string, error) {
		return c.UpdatePartial(ctx, cred, args)
	})
}

// NewAsync is the asynchronous form of New.
func (c *Client) NewAsync(ctx context.Context, cred protocol.Credential, args NewArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpNew, func(ctx context.Context) (string, error) {
		return c.New(ctx, cred, args)
	})
}

// DeleteAsync is the asynchronous form of Delete.
func (c *Client) DeleteAsync(ctx context.Context, cred protocol.Credential, args DeleteArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpDelete, func(ctx context.Context) (string, error) {
		return c.Delete(ctx, cred, args)
	})
}

// SelectAsync is the asynchronous form of Select.
func (c *Client) SelectAsync(ctx context.Context, cred protocol.Credential, args SelectArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpSelect, func(ctx context.Context) (string, error) {
		return c.Select(ctx, cred, args)
	})
}

// SubroutineAsync is the asynchronous form of Subroutine.
func (c *Client) SubroutineAsync(ctx context.Context, cred protocol.Credential, args SubroutineArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpSubroutine, func(ctx context.Context) (string, error) {
		return c.Subroutine(ctx, cred, args)
	})
}

// ConversionAsync is the asynchronous form of Conversion.
func (c *Client) ConversionAsync(ctx context.Context, cred protocol.Credential, args ConversionArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpConversion, func(ctx context.Context) (string, error) {
		return c.Conversion(ctx, cred, args)
	})
}

// FormatAsync is the asynchronous form of Format.
func (c *Client) FormatAsync(ctx context.Context, cred protocol.Credential, args FormatArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpFormat, func(ctx context.Context) (string, error) {
		return c.Format(ctx, cred, args)
	})
}

// DictionariesAsync is the asynchronous form of Dictionaries.
func (c *Client) DictionariesAsync(ctx context.Context, cred protocol.Credential, args DictionariesArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpDictionaries, func(ctx context.Context) (string, error) {
		return c.Dictionaries(ctx, cred, args)
	})
}

// ExecuteAsync is the asynchronous form of Execute.
func (c *Client) ExecuteAsync(ctx context.Context, cred protocol.Credential, args ExecuteArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpExecute, func(ctx context.Context) (string, error) {
		return c.Execute(ctx, cred, args)
	})
}

// GetVersionAsync is the asynchronous form of GetVersion.
func (c *Client) GetVersionAsync(ctx context.Context, cred protocol.Credential, args GetVersionArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpVersion, func(ctx context.Context) (string, error) {
		return c.GetVersion(ctx, cred, args)
	})
}

// LkSchemasAsync is the asynchronous form of LkSchemas.
func (c *Client) LkSchemasAsync(ctx context.Context, cred protocol.Credential, args LkSchemasArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpLkSchemas, func(ctx context.Context) (string, error) {
		return c.LkSchemas(ctx, cred, args)
	})
}

// LkPropertiesAsync is the asynchronous form of LkProperties.
func (c *Client) LkPropertiesAsync(ctx context.Context, cred protocol.Credential, args LkPropertiesArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpLkProperties, func(ctx context.Context) (string, error) {
		return c.LkProperties(ctx, cred, args)
	})
}

// ResetCommonBlocksAsync is the asynchronous form of ResetCommonBlocks.
func (c *Client) ResetCommonBlocksAsync(ctx context.Context, cred protocol.Credential, args ResetCommonBlocksArgs) *Future {
	return c.executor.Submit(ctx, protocol.OpResetCommonBlocks, func(ctx context.Context) (string, error) {
		return c.ResetCommonBlocks(ctx, cred, args)
	})
}
