package handlers

import "errors"

// Input-shape errors. Each missing expected field maps to its own error, and
// the text is exactly what the invoker sees; these are never retried.
var (
	ErrUnrecognizedCommand  = errors.New("Discord sent a command that is not known!")
	ErrNoInvoker            = errors.New("Discord did not send a user object for the command invoker when it was required!")
	ErrNoTarget             = errors.New("Discord did not send a user object for the command target when it was required!")
	ErrNoResolvedData       = errors.New("Discord did not send part of the resolved data!")
	ErrNoTargetID           = errors.New("Discord did not send a target ID for this command!")
	ErrWrongInteractionData = errors.New("Discord sent interaction data for an unsupported interaction type!")
	ErrMissingOption        = errors.New("Discord did not send a required command option!")
	ErrNoGuild              = errors.New("This command can only be used in a server!")
)
