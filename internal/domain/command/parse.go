package command

import (
	"strings"

	"github.com/jsamuelsen11/partner-report/internal/domain"
	"github.com/jsamuelsen11/partner-report/internal/domain/graph"
)

// tokenSeparator splits a line into tokens. Runs of spaces yield empty tokens;
// there is no quoting or trimming.
const tokenSeparator = " "

// arity is the number of arguments each verb takes after the verb itself.
var arity = map[Verb]int{
	VerbPartner:  1,
	VerbCompany:  1,
	VerbEmployee: 2,
	VerbContact:  3,
}

// Parse converts one input line (without its line terminator) into a Command.
//
// Errors:
//   - *domain.UnknownCommandError when the verb is not recognized
//   - *domain.MalformedCommandError when the argument count is wrong
//   - *domain.InvalidValueError when a Contact carries an unknown contact type
func Parse(line string) (Command, error) {
	tokens := strings.Split(line, tokenSeparator)
	verb := Verb(tokens[0])
	args := tokens[1:]

	want, ok := arity[verb]
	if !ok {
		return nil, &domain.UnknownCommandError{Verb: tokens[0]}
	}
	if len(args) != want {
		return nil, &domain.MalformedCommandError{Verb: verb.String(), Want: want, Got: len(args)}
	}

	switch verb {
	case VerbPartner:
		return Partner{Name: args[0]}, nil
	case VerbCompany:
		return Company{Name: args[0]}, nil
	case VerbEmployee:
		return Employee{Name: args[0], Company: args[1]}, nil
	default:
		typ, err := graph.ParseContactType(args[2])
		if err != nil {
			return nil, err
		}
		return Contact{Employee: args[0], Partner: args[1], Type: typ}, nil
	}
}
