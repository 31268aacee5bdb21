package scanner

import "github.com/ctrlflow-yaml/yamlevents/internal/token"

// simpleKeyStaleHorizon bounds how far a possible simple key can drift from
// its origin before it is abandoned: more than 1024 bytes away, or onto a
// later line.
const simpleKeyStaleHorizon = 1024

// staleSimpleKeys drops any pending simple key whose line or byte-distance
// horizon has been exceeded, turning a still-Required one into an error.
func (s *Scanner) staleSimpleKeys() error {
	for i := range s.simpleKeys {
		sk := &s.simpleKeys[i]
		if !sk.Possible {
			continue
		}
		if sk.Mark.Line != s.mark.Line || s.mark.Offset-sk.Mark.Offset > simpleKeyStaleHorizon {
			if sk.Required {
				return s.newError(token.ExpectedKey, "could not find expected ':'")
			}
			sk.Possible = false
		}
	}
	return nil
}

// saveSimpleKey records the current position as a possible simple key,
// displacing whatever was already pending at this flow level.
func (s *Scanner) saveSimpleKey() error {
	required := s.flowLevel == 0 && s.indent == s.mark.Column-1
	if s.simpleKeyAllowed {
		if err := s.removeSimpleKey(); err != nil {
			return err
		}
		sk := token.SimpleKeyCandidate{
			Possible:    true,
			Required:    required,
			TokenNumber: s.nextTokenNumber(),
			Mark:        s.mark,
		}
		if len(s.simpleKeys) == 0 {
			s.simpleKeys = append(s.simpleKeys, sk)
		} else {
			s.simpleKeys[len(s.simpleKeys)-1] = sk
		}
	}
	return nil
}

// removeSimpleKey invalidates whatever simple key is pending at the current
// flow level, erroring if it had already been declared Required.
func (s *Scanner) removeSimpleKey() error {
	if len(s.simpleKeys) == 0 {
		return nil
	}
	sk := &s.simpleKeys[len(s.simpleKeys)-1]
	if sk.Possible && sk.Required {
		return s.newError(token.ExpectedKey, "could not find expected ':'")
	}
	sk.Possible = false
	return nil
}

func (s *Scanner) increaseFlowLevel() {
	s.simpleKeys = append(s.simpleKeys, token.SimpleKeyCandidate{})
	s.flowLevel++
}

func (s *Scanner) decreaseFlowLevel() {
	if s.flowLevel > 0 {
		s.flowLevel--
		s.simpleKeys = s.simpleKeys[:len(s.simpleKeys)-1]
	}
}
