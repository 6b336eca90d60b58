package grammar

import "errors"

var ErrGrammar = errors.New("grammar error")
