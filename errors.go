// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package golly

import "errors"

// Recoverable errors. These are returned, never panicked.
var (
	ErrRuleSyntax         = errors.New("golly: rule string rejected")
	ErrRuleDigitRange     = errors.New("golly: birth/survival count exceeds neighbourhood degree")
	ErrRuleLetterConflict = errors.New("golly: negated and positive letters at same count")
	ErrRuleNeedsMoore     = errors.New("golly: isotropic non-totalistic rules require a Moore neighbourhood")
	ErrRuleUnsupported    = errors.New("golly: B0-without-Smax rules are not supported by the hashed engine")
	ErrRuleBadMap         = errors.New("golly: malformed MAP rule")

	ErrIncrementTooLarge = errors.New("golly: increment's odd factor does not fit a single step counter")

	ErrMacrocellSyntax  = errors.New("golly: malformed macrocell line")
	ErrMacrocellBadRef  = errors.New("golly: node reference out of range")
	ErrMacrocellNoMagic = errors.New("golly: missing [M2] header")

	errInvariant = errors.New("golly: internal invariant violated")
)

// StatusSink receives diagnostic messages from the engine. All three
// methods are optional for a caller to act on; fatal is reserved for
// InternalInvariantViolation and is never used for memory pressure or
// for rejected user input.
type StatusSink interface {
	Status(msg string)
	Warning(msg string)
	Fatal(msg string)
}

// nopSink discards everything; it is the default when no sink is set.
type nopSink struct{}

func (nopSink) Status(string)  {}
func (nopSink) Warning(string) {}
func (nopSink) Fatal(msg string) {
	panic("golly: " + msg)
}

// Poller is consulted at one cooperative suspension point: the top of
// Step's loop, before each repetition. Poll returning true makes Step
// return without running the remaining repetitions. get_result and the
// garbage collector do not consult it, so a repetition that has started
// always runs to completion.
type Poller interface {
	Poll() bool
}

// neverInterrupt is the default Poller.
type neverInterrupt struct{}

func (neverInterrupt) Poll() bool { return false }
