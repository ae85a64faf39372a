package dbpedia

// resultsEnvelope is the application/sparql-results+json document.
type resultsEnvelope struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]bindingValue `json:"bindings"`
	} `json:"results"`
}

type bindingValue struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}
