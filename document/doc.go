// Package document reads and writes JSON and YAML documents as the nested
// map[string]any values the dotpath package operates on.
//
//	data, err := document.ReadFile("values.yaml", document.FormatAuto)
//	dotpath.Set(data, 3, "replicas")
//	err = document.WriteFile("values.yaml", data, document.FormatAuto)
//
// Nested YAML mappings are always returned as map[string]any; non-string
// keys are converted with fmt.
package document
