package engine

// Alt names one alternative of an Or so that a NoAlternative failure can
// report which productions were attempted. Grammar authors are
// responsible for ordering alternatives correctly — there is no
// longest-match search, and the first alternative to succeed wins. This
// is how, for example, MethodDefinition is listed before
// IdentifierReference inside PropertyDefinition.
type Alt struct {
	Name string
	Body Thunk
}

// Named builds an Or alternative. It exists only to give Or something to
// put in a NoAlternative's Tried list; it has no effect on matching.
func Named(name string, body Thunk) Alt {
	return Alt{Name: name, Body: body}
}

// Or is ordered choice with full backtracking (spec §4.4). Alternatives
// are tried in listed order. The first one to return nil wins and its
// checkpoint is committed. Any alternative that fails with a recoverable
// error is rolled back — cursor and open-parent children are restored to
// exactly what they were before that alternative ran — and the next
// alternative is tried. A fatal error from an alternative propagates
// immediately without trying the rest.
//
// If every alternative fails recoverably, Or returns NoAlternative naming
// every alternative that was tried.
func (p *Parser) Or(alternatives ...Alt) error {
	tried := make([]string, 0, len(alternatives))
	for _, alt := range alternatives {
		cp := p.save()
		err := alt.Body()
		if err == nil {
			p.commit(cp)
			return nil
		}
		if !isRecoverable(err) {
			return err
		}
		p.restore(cp)
		tried = append(tried, alt.Name)
	}
	p.recordFurthest(p.cur, tried, p.peek(0))
	return NoAlternative{At: p.cur, Tried: tried}
}

// Many is zero-or-more (spec §4.4). It repeatedly saves, tries body, and
// on success commits and loops; on a recoverable failure it restores and
// stops. Many itself never fails except with NonProgressingRepetition,
// which fires if body succeeds without advancing the cursor — this is a
// grammar bug (an infinite loop waiting to happen), not a syntax error,
// so it is fatal rather than swallowed like everything else here.
func (p *Parser) Many(rule string, body Thunk) error {
	for {
		before := p.cur
		cp := p.save()
		err := body()
		if err != nil {
			if !isRecoverable(err) {
				return err
			}
			p.restore(cp)
			return nil
		}
		p.commit(cp)
		if p.cur == before {
			return NonProgressingRepetition{At: p.cur, Rule: rule}
		}
	}
}

// Option is zero-or-one (spec §4.4): a single Many iteration. It never
// fails; on a recoverable failure from body it silently rolls back.
func (p *Parser) Option(body Thunk) error {
	cp := p.save()
	err := body()
	if err != nil {
		if !isRecoverable(err) {
			return err
		}
		p.restore(cp)
		return nil
	}
	p.commit(cp)
	return nil
}

// FaultToleranceMany is Many for the top level only (spec §4.4): on a
// recoverable failure it rolls back, appends a synthetic ErrorNode for
// the current token to the open parent, and force-advances the cursor by
// one token before continuing, guaranteeing progress even though the
// grammar rule that failed made none. This is what lets ModuleItemList
// return a usable, partial CST when the source has a syntax error inside
// a top-level item, instead of aborting the whole parse.
func (p *Parser) FaultToleranceMany(rule string, body Thunk) error {
	for {
		if p.AtEnd() {
			return nil
		}
		before := p.cur
		cp := p.save()
		err := body()
		if err != nil {
			if !isRecoverable(err) {
				return err
			}
			p.restore(cp)
			bad := p.peek(0)
			if top := p.topOrNil(); top != nil {
				top.AddChild(errorNodeFor(bad))
			}
			if !p.AtEnd() {
				p.cur++
			} else {
				return nil
			}
			continue
		}
		p.commit(cp)
		if p.cur == before {
			return NonProgressingRepetition{At: p.cur, Rule: rule}
		}
	}
}
