package report

// Schema is the JSON Schema (Draft 2020-12) for the holes JSON
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/holes/count-report.schema.json",
  "title": "Holes Count Report",
  "description": "Output schema for holes count --format=json",
  "type": "object",
  "required": ["version", "mode", "entries", "summary"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Holes version that produced the report"
    },
    "mode": {
      "type": "string",
      "enum": ["strict", "lenient"],
      "description": "Digit extraction mode"
    },
    "entries": {
      "type": "array",
      "items": { "$ref": "#/$defs/Entry" }
    },
    "summary": { "$ref": "#/$defs/Summary" }
  },
  "$defs": {
    "Entry": {
      "type": "object",
      "required": ["source", "input"],
      "properties": {
        "source": {
          "type": "string",
          "description": "arg, stdin, or a file path"
        },
        "line": {
          "type": "integer",
          "minimum": 1,
          "description": "1-based line number within source"
        },
        "input": {
          "type": "string",
          "description": "Raw input text"
        },
        "result": { "$ref": "#/$defs/Result" },
        "error": {
          "type": "string",
          "description": "Why counting failed"
        }
      },
      "oneOf": [
        { "required": ["result"] },
        { "required": ["error"] }
      ]
    },
    "Result": {
      "type": "object",
      "required": ["input", "digits", "negative", "holes", "breakdown"],
      "properties": {
        "input": { "type": "string" },
        "digits": {
          "type": "string",
          "pattern": "^([1-9][0-9]*)?$",
          "description": "Matched digit run without leading zeros"
        },
        "negative": { "type": "boolean" },
        "holes": { "type": "integer", "minimum": 0 },
        "breakdown": {
          "type": "array",
          "items": { "$ref": "#/$defs/DigitCount" }
        }
      }
    },
    "DigitCount": {
      "type": "object",
      "required": ["digit", "count", "holes"],
      "properties": {
        "digit": { "type": "string", "pattern": "^[0-9]$" },
        "count": { "type": "integer", "minimum": 1 },
        "holes": { "type": "integer", "minimum": 1 }
      }
    },
    "Summary": {
      "type": "object",
      "required": ["inputs", "counted", "failed", "total_holes"],
      "properties": {
        "inputs": { "type": "integer", "minimum": 0 },
        "counted": { "type": "integer", "minimum": 0 },
        "failed": { "type": "integer", "minimum": 0 },
        "total_holes": { "type": "integer", "minimum": 0 }
      }
    }
  }
}`
