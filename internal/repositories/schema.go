package repositories

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchemaJSON describes the structural shape of the document: date
// keys mapping to arrays of entry records. Status values are checked by the
// model layer, not here, so the enum can stay in one place.
const documentSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "todo document",
  "type": "object",
  "patternProperties": {
    "^[0-9]{2}-[0-9]{2}-[0-9]{4}$": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "status", "date_created", "date_updated", "log"],
        "properties": {
          "id": {"type": "integer"},
          "title": {"type": "string"},
          "status": {"type": "string"},
          "date_created": {"type": "string"},
          "date_updated": {"type": "string"},
          "log": {
            "type": "array",
            "items": {"type": "string"},
            "minItems": 1
          }
        }
      }
    }
  },
  "additionalProperties": false
}`

var documentSchema = jsonschema.MustCompileString("todo-document.json", documentSchemaJSON)
