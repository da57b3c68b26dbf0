package session

import "errors"

var (
	// ErrSessionAlreadyActive is returned when a lesson is started for
	// a user who already has one in flight.
	ErrSessionAlreadyActive = errors.New("a lesson is already active for this user")

	// ErrNoActiveSession is returned by operations that require a live
	// lesson when none exists.
	ErrNoActiveSession = errors.New("no active lesson for this user")

	// ErrUnexpectedAnswer is returned when an answer arrives with no
	// question pending. The lesson state is left unchanged.
	ErrUnexpectedAnswer = errors.New("no question is awaiting an answer")
)
