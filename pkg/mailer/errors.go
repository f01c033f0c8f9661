package mailer

import "errors"

// The dispatch pipeline classifies every failure into exactly one of these
// four kinds at the point of detection. Details are attached with
// fmt.Errorf("%w: ...") so the HTTP boundary can match the kind with
// errors.Is and expose only the flat detail string.
var (
	// ErrTemplateNotFound indicates the requested template file does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRender indicates the template could not be read, parsed, or executed,
	// including strict-mode failures on variables missing from the request.
	ErrRender = errors.New("render error")

	// ErrSMTP indicates the transport failed to deliver the assembled message.
	// The file transport's failures are reported under the same kind.
	ErrSMTP = errors.New("smtp error")

	// ErrConfig indicates invalid addressing or service configuration,
	// such as an unparsable recipient entry.
	ErrConfig = errors.New("config error")
)
