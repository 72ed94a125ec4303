package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

// smells flags patterns that usually hide a simpler form.
func smells(m dsl.Matcher) {
	// Consecutive guards with an identical return collapse into one condition.
	m.Match(`if $c1 { return $ret }; if $c2 { return $ret }`).
		Report(`two consecutive guards return the same value; merge the conditions with ||`).
		Suggest(`if $c1 || $c2 { return $ret }`)

	m.Match(`if $c1 { continue }; if $c2 { continue }`).
		Report(`two consecutive continues; merge the conditions with ||`).
		Suggest(`if $c1 || $c2 { continue }`)
}

// midpoint keeps binary-search midpoints overflow-free.
func midpoint(m dsl.Matcher) {
	m.Match(`($lo + $hi) / 2`).
		Where(m["lo"].Type.Is("int") && m["hi"].Type.Is("int")).
		Report(`($lo + $hi) / 2 can overflow; use $lo + ($hi-$lo)/2`).
		Suggest(`$lo + ($hi-$lo)/2`)
}

// structuredLogging keeps library packages on zap.
func structuredLogging(m dsl.Matcher) {
	m.Match(`fmt.Printf($*_)`, `fmt.Println($*_)`, `fmt.Print($*_)`, `log.Printf($*_)`, `log.Println($*_)`).
		Where(m.File().PkgPath.Matches(`/internal/`)).
		Report(`print to stdout from an internal package; log through the injected *zap.Logger`)
}

// jsonErrors keeps API failures in the {"detail": ...} envelope.
func jsonErrors(m dsl.Matcher) {
	m.Match(`http.Error($w, $msg, $code)`).
		Where(m.File().PkgPath.Matches(`/internal/api/handlers$`)).
		Report(`plain-text error response; use writeError($w, $code, $msg)`)
}
