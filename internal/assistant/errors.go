package assistant

import "errors"

var ErrEmptyTranscript = errors.New("transcript is required")
