package options

import "github.com/dan-strohschein/linkar-go/protocol"

// RecoverIDType is how the ids of deleted records are handed back for
// reuse.
type RecoverIDType struct {
	linkar    bool
	prefix    string
	separator string
	custom    bool
}

// NoRecoverID does not recover ids.
func NoRecoverID() RecoverIDType { return RecoverIDType{} }

// LinkarRecoverID recovers ids created by a LinkarRecordID policy with the
// same prefix and separator.
func LinkarRecoverID(prefix, separator string) RecoverIDType {
	return RecoverIDType{linkar: true, prefix: prefix, separator: separator}
}

// CustomRecoverID calls the SUB.RECOVERID subroutine on the server.
func CustomRecoverID() RecoverIDType { return RecoverIDType{custom: true} }

func (r RecoverIDType) Linkar() bool      { return r.linkar }
func (r RecoverIDType) Prefix() string    { return r.prefix }
func (r RecoverIDType) Separator() string { return r.separator }
func (r RecoverIDType) Custom() bool      { return r.custom }

// Encode renders linkar VM prefix VM separator AM custom.
func (r RecoverIDType) Encode() string {
	return protocol.JoinFields(
		protocol.JoinValues(protocol.Flag(r.linkar), r.prefix, r.separator),
		protocol.Flag(r.custom),
	)
}

// DeleteOptions configures Delete.
type DeleteOptions struct {
	optimisticLock bool
	recoverIDType  RecoverIDType
}

// DefaultDeleteOptions deletes without lock check or id recovery.
func DefaultDeleteOptions() *DeleteOptions {
	return &DeleteOptions{}
}

// NewDeleteOptions builds delete options.
func NewDeleteOptions(optimisticLock bool, recoverIDType RecoverIDType) *DeleteOptions {
	return &DeleteOptions{optimisticLock: optimisticLock, recoverIDType: recoverIDType}
}

// OptimisticLock reports whether the delete must match the original records.
func (o *DeleteOptions) OptimisticLock() bool { return o != nil && o.optimisticLock }

// RecoverIDType returns the id recovery policy.
func (o *DeleteOptions) RecoverIDType() RecoverIDType {
	if o == nil {
		return NoRecoverID()
	}
	return o.recoverIDType
}

// Encode renders optimisticLock AM recoverIdType.
func (o *DeleteOptions) Encode() string {
	return protocol.JoinFields(protocol.Flag(o.OptimisticLock()), o.RecoverIDType().Encode())
}

// Validate always succeeds.
func (o *DeleteOptions) Validate() error { return nil }
