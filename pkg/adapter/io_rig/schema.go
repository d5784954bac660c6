// 指示: miu200521358
package io_rig

// rigSchemaJSON はリグファイルの構造契約。
const rigSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "bones"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "poseEditing": {"type": "boolean"},
    "bones": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "parent": {"type": "integer", "minimum": -1},
          "selected": {"type": "boolean"},
          "translation": {"$ref": "#/$defs/vec3"},
          "rotation": {"$ref": "#/$defs/quat"},
          "scale": {"$ref": "#/$defs/vec3"}
        }
      }
    }
  },
  "$defs": {
    "vec3": {
      "type": "array",
      "items": {"type": "number"},
      "minItems": 3,
      "maxItems": 3
    },
    "quat": {
      "type": "array",
      "items": {"type": "number"},
      "minItems": 4,
      "maxItems": 4
    }
  }
}`

// poseSchemaJSON はポーズ資産ファイルの構造契約。
const poseSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "channels"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "channels": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["bone"],
        "properties": {
          "bone": {"type": "string", "minLength": 1},
          "translation": {"$ref": "#/$defs/vec3"},
          "rotation": {"$ref": "#/$defs/quat"},
          "scale": {"$ref": "#/$defs/vec3"}
        }
      }
    }
  },
  "$defs": {
    "vec3": {
      "type": "array",
      "items": {"type": "number"},
      "minItems": 3,
      "maxItems": 3
    },
    "quat": {
      "type": "array",
      "items": {"type": "number"},
      "minItems": 4,
      "maxItems": 4
    }
  }
}`
