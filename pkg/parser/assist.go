package parser

// The assist stage is an escape hatch for statements nothing else can
// read: a caller-supplied Strategy consulted only when the whole
// cascade produced zero drafts. The parser itself never talks to the
// network; whatever the assist does (an OCR service, a hosted model, a
// site-specific scraper) lives entirely in the caller.

// Option configures a Parser.
type Option func(*Parser)

// WithAssist installs a last-resort extraction strategy.
func WithAssist(s Strategy) Option {
	return func(p *Parser) { p.assist = s }
}

// WithNormalize toggles description normalization on promoted
// transactions. On by default.
func WithNormalize(on bool) Option {
	return func(p *Parser) { p.normalize = on }
}

// WithDeduplicate toggles duplicate suppression. On by default.
func WithDeduplicate(on bool) Option {
	return func(p *Parser) { p.dedupe = on }
}
