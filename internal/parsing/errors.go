package parsing

import (
	"fmt"
	"strings"
)

// QualityError reports required fields the parse could not recover.
// It is only returned in strict mode; the normal path surfaces the same
// information through ValidateParsedData without failing the parse.
type QualityError struct {
	MissingFields []string
}

func (e *QualityError) Error() string {
	return fmt.Sprintf("parsed CV is missing required fields: %s", strings.Join(e.MissingFields, ", "))
}
