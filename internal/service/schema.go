package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

// MinGraduationYear is the oldest graduation year the form offers.
const MinGraduationYear = 2000

const applicationSchemaJSON = `{
  "type": "object",
  "required": ["fullname", "age", "graduation_year", "experience"],
  "properties": {
    "fullname":        {"type": "string", "minLength": 1, "maxLength": 200},
    "age":             {"type": "integer", "minimum": 15, "maximum": 100},
    "graduation_year": {"type": "integer", "minimum": 2000},
    "experience":      {"type": "string", "minLength": 1, "maxLength": 50},
    "skills":          {"type": "string", "maxLength": 2000}
  }
}`

var applicationSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(applicationSchemaJSON))
})

// formDocument turns raw form values into the JSON document the schema
// checks. Blank values are omitted so "required" reports them; numbers that
// do not parse stay strings so "type" reports them.
func formDocument(in ApplicationInput) map[string]any {
	doc := map[string]any{}
	setString := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			doc[k] = v
		}
	}
	setInt := func(k, v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		if n, err := strconv.Atoi(v); err == nil {
			doc[k] = n
			return
		}
		doc[k] = v
	}
	setString("fullname", in.FullName)
	setInt("age", in.Age)
	setInt("graduation_year", in.GraduationYear)
	setString("experience", in.Experience)
	if s := strings.TrimSpace(in.Skills); s != "" {
		doc["skills"] = s
	}
	return doc
}

// validateApplication checks the form fields. The upper bound of the
// graduation year moves with the clock, so it is checked outside the schema.
func validateApplication(in ApplicationInput, now time.Time) error {
	schema, err := applicationSchema()
	if err != nil {
		return fmt.Errorf("compile application schema: %w", err)
	}

	doc := formDocument(in)
	res, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate application: %w", err)
	}

	verr := &ValidationError{}
	for _, e := range res.Errors() {
		field := e.Field()
		if p, ok := e.Details()["property"].(string); ok && e.Type() == "required" {
			field = p
		}
		verr.add(field, e.Description())
	}
	if y, ok := doc["graduation_year"].(int); ok && y > now.Year() {
		verr.add("graduation_year", fmt.Sprintf("Must be less than or equal to %d", now.Year()))
	}
	return verr.orNil()
}
