package dbpedia

import (
	"fmt"
	"strings"
)

const (
	varName        = "nome"
	varCountry     = "paisNascimento"
	varBirthDate   = "dataNascimentoFormatted"
	varClub        = "clubeNome"
	varPosition    = "posicaoLabel"
	varHeight      = "altura"
	varShirtNumber = "numeroCamisa"
	varGoals       = "allGols"
	varLeague      = "liga"
	varTotal       = "total"
)

var selectVars = []string{
	varName, varCountry, varBirthDate, varClub, varPosition,
	varHeight, varShirtNumber, varGoals, varLeague,
}

const prefixes = `PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
PREFIX dbp: <http://dbpedia.org/property/>
PREFIX dbo: <http://dbpedia.org/ontology/>
PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
`

// wherePattern selects one row per goal observation of every soccer player
// with an English label, birth data, current club, position, height, shirt
// number and league. The birth country is optional.
const wherePattern = `{
  { ?sub rdf:type dbo:SoccerPlayer . }
  union
  { ?sub a dbo:SoccerPlayer . }
  ?sub rdfs:label ?nome .
  FILTER (LANG(?nome) = 'en') .

  ?sub dbo:birthPlace ?localNascimento .
  OPTIONAL {
    ?localNascimento dbo:country ?paisNascimentoURI .
    ?paisNascimentoURI rdfs:label ?paisNascimento .
    FILTER (LANG(?paisNascimento) = 'en') .
  }

  ?sub dbp:birthDate ?dataNascimento .

  ?sub dbp:currentclub ?clubeAtual .
  ?clubeAtual rdfs:label ?clubeNome .
  FILTER (LANG(?clubeNome) = 'en') .

  ?sub dbp:position ?posicao .
  ?posicao rdfs:label ?posicaoLabel .
  FILTER (LANG(?posicaoLabel) = 'en') .

  ?sub dbo:height ?altura .
  FILTER (datatype(?altura) = xsd:double) .

  ?sub dbp:clubnumber ?numeroCamisa .
  FILTER (datatype(?numeroCamisa) = xsd:integer) .

  ?sub dbp:goals ?allGols .
  FILTER (datatype(?allGols) = xsd:integer) .

  ?clubeAtual dbo:league ?ligaURI .
  ?ligaURI rdfs:label ?liga .
  FILTER (LANG(?liga) = 'en') .

  FILTER (isURI(?clubeAtual)) .
  FILTER (isURI(?paisNascimentoURI)) .

  BIND (
    IF (datatype(?dataNascimento) = xsd:dateTime, STRDT(STR(?dataNascimento), xsd:date), ?dataNascimento)
    AS ?dataNascimentoFormatted
  )
}`

func selectClause() string {
	vars := make([]string, 0, len(selectVars))
	for _, v := range selectVars {
		vars = append(vars, "?"+v)
	}
	return "select distinct " + strings.Join(vars, " ")
}

// PlayersQuery is the unpaged query.
func PlayersQuery() string {
	return prefixes + "\n" + selectClause() + " where " + wherePattern
}

// PlayersPageQuery orders by every projected variable so that LIMIT/OFFSET
// windows are stable between requests.
func PlayersPageQuery(offset, limit int) string {
	order := make([]string, 0, len(selectVars))
	for _, v := range selectVars {
		order = append(order, "?"+v)
	}
	return fmt.Sprintf("%s\n%s where %s\nORDER BY %s\nLIMIT %d\nOFFSET %d",
		prefixes, selectClause(), wherePattern, strings.Join(order, " "), limit, offset)
}

// PlayersCountQuery counts the rows PlayersQuery returns.
func PlayersCountQuery() string {
	return fmt.Sprintf("%s\nselect (COUNT(*) AS ?%s) where {\n%s where %s\n}",
		prefixes, varTotal, selectClause(), wherePattern)
}
