package dialect

// reservedWords are the DuckDB keywords that require quoting when used as
// identifiers. This is the engine's reserved set, not the full keyword
// list: unreserved keywords (most of them) are legal bare identifiers.
var reservedWords = []string{
	"all",
	"analyse",
	"analyze",
	"and",
	"any",
	"array",
	"as",
	"asc",
	"asymmetric",
	"both",
	"case",
	"cast",
	"check",
	"collate",
	"column",
	"constraint",
	"create",
	"default",
	"deferrable",
	"desc",
	"describe",
	"distinct",
	"do",
	"else",
	"end",
	"except",
	"false",
	"fetch",
	"for",
	"foreign",
	"from",
	"grant",
	"group",
	"having",
	"in",
	"initially",
	"intersect",
	"into",
	"lateral",
	"leading",
	"limit",
	"not",
	"null",
	"offset",
	"on",
	"only",
	"or",
	"order",
	"pivot",
	"placing",
	"primary",
	"qualify",
	"references",
	"returning",
	"select",
	"show",
	"some",
	"symmetric",
	"table",
	"then",
	"to",
	"trailing",
	"true",
	"union",
	"unique",
	"unpivot",
	"using",
	"variadic",
	"when",
	"where",
	"window",
	"with",
}
