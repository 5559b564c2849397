package sqldialect

// Dialect profiles are assembled from two data sets: ansiFunctions, which
// are spelled and implemented identically everywhere, and functionDefs,
// which carry one implementation identity and a per-dialect surface
// spelling. A dialect absent from a def's spelling map does not know the
// function at all.

const (
	dialectPostgres   = "postgres"
	dialectSnowflake  = "snowflake"
	dialectBigQuery   = "bigquery"
	dialectSpark      = "spark"
	dialectDatabricks = "databricks"
	dialectRedshift   = "redshift"
	dialectDuckDB     = "duckdb"
	dialectTrino      = "trino"
	dialectPresto     = "presto"
)

var dialectNames = []string{
	dialectPostgres,
	dialectSnowflake,
	dialectBigQuery,
	dialectSpark,
	dialectDatabricks,
	dialectRedshift,
	dialectDuckDB,
	dialectTrino,
	dialectPresto,
}

// ansiFunctions are uniform across every supported dialect and therefore
// never flagged by the oracle.
var ansiFunctions = []string{
	"ABS",
	"AVG",
	"CAST",
	"CEIL",
	"COALESCE",
	"CONCAT",
	"COUNT",
	"CURRENT_DATE",
	"CURRENT_TIMESTAMP",
	"EXP",
	"EXTRACT",
	"FLOOR",
	"GREATEST",
	"LEAST",
	"LENGTH",
	"LN",
	"LOWER",
	"LPAD",
	"LTRIM",
	"MAX",
	"MD5",
	"MIN",
	"MOD",
	"NULLIF",
	"POWER",
	"REPLACE",
	"REVERSE",
	"ROUND",
	"RPAD",
	"RTRIM",
	"SQRT",
	"SUBSTRING",
	"SUM",
	"TRIM",
	"UPPER",
}

type functionDef struct {
	impl      string
	spellings map[string]string
}

var functionDefs = []functionDef{
	{
		impl: "array_agg",
		spellings: map[string]string{
			dialectPostgres:   "ARRAY_AGG",
			dialectSnowflake:  "ARRAY_AGG",
			dialectBigQuery:   "ARRAY_AGG",
			dialectSpark:      "COLLECT_LIST",
			dialectDatabricks: "COLLECT_LIST",
			dialectDuckDB:     "ARRAY_AGG",
			dialectTrino:      "ARRAY_AGG",
			dialectPresto:     "ARRAY_AGG",
		},
	},
	{
		impl: "collect_set",
		spellings: map[string]string{
			dialectSpark:      "COLLECT_SET",
			dialectDatabricks: "COLLECT_SET",
		},
	},
	{
		impl: "string_agg",
		spellings: map[string]string{
			dialectPostgres:  "STRING_AGG",
			dialectBigQuery:  "STRING_AGG",
			dialectDuckDB:    "STRING_AGG",
			dialectSnowflake: "LISTAGG",
			dialectRedshift:  "LISTAGG",
			dialectTrino:     "LISTAGG",
		},
	},
	{
		impl: "regexp_extract",
		spellings: map[string]string{
			dialectSpark:      "REGEXP_EXTRACT",
			dialectDatabricks: "REGEXP_EXTRACT",
			dialectBigQuery:   "REGEXP_EXTRACT",
			dialectDuckDB:     "REGEXP_EXTRACT",
			dialectTrino:      "REGEXP_EXTRACT",
			dialectPresto:     "REGEXP_EXTRACT",
			dialectSnowflake:  "REGEXP_SUBSTR",
			dialectRedshift:   "REGEXP_SUBSTR",
		},
	},
	{
		impl: "ifnull",
		spellings: map[string]string{
			dialectSnowflake:  "IFNULL",
			dialectBigQuery:   "IFNULL",
			dialectDuckDB:     "IFNULL",
			dialectSpark:      "NVL",
			dialectDatabricks: "NVL",
			dialectRedshift:   "NVL",
		},
	},
	{
		impl: "approx_count_distinct",
		spellings: map[string]string{
			dialectSnowflake:  "APPROX_COUNT_DISTINCT",
			dialectBigQuery:   "APPROX_COUNT_DISTINCT",
			dialectSpark:      "APPROX_COUNT_DISTINCT",
			dialectDatabricks: "APPROX_COUNT_DISTINCT",
			dialectDuckDB:     "APPROX_COUNT_DISTINCT",
			dialectTrino:      "APPROX_DISTINCT",
			dialectPresto:     "APPROX_DISTINCT",
		},
	},
	{
		impl: "datediff",
		spellings: map[string]string{
			dialectSnowflake:  "DATEDIFF",
			dialectRedshift:   "DATEDIFF",
			dialectSpark:      "DATEDIFF",
			dialectDatabricks: "DATEDIFF",
			dialectBigQuery:   "DATE_DIFF",
			dialectDuckDB:     "DATE_DIFF",
			dialectTrino:      "DATE_DIFF",
			dialectPresto:     "DATE_DIFF",
		},
	},
	{
		impl: "dateadd",
		spellings: map[string]string{
			dialectSnowflake:  "DATEADD",
			dialectRedshift:   "DATEADD",
			dialectDatabricks: "DATEADD",
			dialectSpark:      "DATE_ADD",
			dialectBigQuery:   "DATE_ADD",
			dialectDuckDB:     "DATE_ADD",
			dialectTrino:      "DATE_ADD",
			dialectPresto:     "DATE_ADD",
		},
	},
	{
		// Unit-first DATE_TRUNC. BigQuery spells it the same but puts the
		// unit last, so it carries a distinct implementation identity and
		// unit-first nodes refuse to render there.
		impl: "date_trunc",
		spellings: map[string]string{
			dialectPostgres:   "DATE_TRUNC",
			dialectSnowflake:  "DATE_TRUNC",
			dialectSpark:      "DATE_TRUNC",
			dialectDatabricks: "DATE_TRUNC",
			dialectRedshift:   "DATE_TRUNC",
			dialectDuckDB:     "DATE_TRUNC",
			dialectTrino:      "DATE_TRUNC",
			dialectPresto:     "DATE_TRUNC",
		},
	},
	{
		impl: "date_trunc_unit_last",
		spellings: map[string]string{
			dialectBigQuery: "DATE_TRUNC",
		},
	},
	{
		impl: "to_date",
		spellings: map[string]string{
			dialectPostgres:   "TO_DATE",
			dialectSnowflake:  "TO_DATE",
			dialectSpark:      "TO_DATE",
			dialectDatabricks: "TO_DATE",
			dialectRedshift:   "TO_DATE",
			dialectBigQuery:   "PARSE_DATE",
		},
	},
	{
		impl: "json_extract",
		spellings: map[string]string{
			dialectBigQuery:   "JSON_EXTRACT",
			dialectDuckDB:     "JSON_EXTRACT",
			dialectTrino:      "JSON_EXTRACT",
			dialectPresto:     "JSON_EXTRACT",
			dialectSpark:      "GET_JSON_OBJECT",
			dialectDatabricks: "GET_JSON_OBJECT",
			dialectSnowflake:  "JSON_EXTRACT_PATH_TEXT",
			dialectRedshift:   "JSON_EXTRACT_PATH_TEXT",
		},
	},
	{
		impl: "split",
		spellings: map[string]string{
			dialectSpark:      "SPLIT",
			dialectDatabricks: "SPLIT",
			dialectBigQuery:   "SPLIT",
			dialectSnowflake:  "SPLIT",
			dialectTrino:      "SPLIT",
			dialectPresto:     "SPLIT",
			dialectDuckDB:     "STRING_SPLIT",
			dialectPostgres:   "STRING_TO_ARRAY",
			dialectRedshift:   "SPLIT_TO_ARRAY",
		},
	},
	{
		impl: "levenshtein",
		spellings: map[string]string{
			dialectPostgres:   "LEVENSHTEIN",
			dialectSpark:      "LEVENSHTEIN",
			dialectDatabricks: "LEVENSHTEIN",
			dialectDuckDB:     "LEVENSHTEIN",
			dialectSnowflake:  "EDITDISTANCE",
			dialectTrino:      "LEVENSHTEIN_DISTANCE",
			dialectPresto:     "LEVENSHTEIN_DISTANCE",
		},
	},
	{
		impl: "random",
		spellings: map[string]string{
			dialectPostgres:  "RANDOM",
			dialectSnowflake: "RANDOM",
			dialectRedshift:  "RANDOM",
			dialectDuckDB:    "RANDOM",
			dialectTrino:     "RANDOM",
			dialectPresto:    "RANDOM",
			dialectSpark:     "RAND",
			dialectBigQuery:  "RAND",
		},
	},
}

// buildCatalogs derives the per-dialect parse and render tables from the
// shared data sets.
func buildCatalogs() map[string]*profile {
	profiles := make(map[string]*profile, len(dialectNames))

	for _, name := range dialectNames {
		p := &profile{
			name:      name,
			functions: make(map[string]string),
			renders:   make(map[string]string),
		}

		for _, fn := range ansiFunctions {
			impl := "ansi:" + fn
			p.functions[fn] = impl
			p.renders[impl] = fn
		}

		profiles[name] = p
	}

	for _, def := range functionDefs {
		for dialect, spelling := range def.spellings {
			p := profiles[dialect]
			p.functions[spelling] = def.impl
			p.renders[def.impl] = spelling
		}
	}

	return profiles
}
