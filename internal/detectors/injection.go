package detectors

import (
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reSQLConcat     = regexp.MustCompile(`(?i)(query\([^)]*\+\s*(req\.|params|input|user)|"(SELECT|INSERT|UPDATE|DELETE)[^"]*"\s*\+|(SELECT|INSERT|UPDATE|DELETE)[^` + "`" + `]*\$\{)`)
	reParamQuery    = regexp.MustCompile(`(?i)(\$\d\b|\?\s*,|prepare\(|preparedStatement|parameterized|sql\.Named|db\.Query\([^)]*,\s*\w)`)
	reEvalUsage     = regexp.MustCompile(`(?i)(\beval\(|new Function\(|setTimeout\(\s*['"]|vm\.runInNewContext)`)
	reShellConcat   = regexp.MustCompile(`(?i)(exec(Sync)?\([^)]*(\+|\$\{)|os\.system\([^)]*(\+|%)|subprocess\.\w+\([^)]*\+)`)
	reInputValidate = regexp.MustCompile(`(?i)(joi\.|zod\.|yup\.|express-validator|validator\.|validate\(|z\.object|check\(['"])`)
)

// SQLConcatenation flags SQL statements built by string concatenation or
// template interpolation.
func SQLConcatenation(scan *scanner.Result) Outcome {
	return negative(scan.Code(), []pattern{
		{reSQLConcat, "SQL built from string concatenation/interpolation"},
	}, types.StatusFail, []string{
		"Use parameterized queries or an ORM; never splice user input into SQL",
	})
}

// ParameterizedQueries looks for parameterized query usage anywhere SQL is
// present. Trees without SQL at all are inapplicable.
func ParameterizedQueries(scan *scanner.Result) Outcome {
	sqlFiles := 0
	reSQL := regexp.MustCompile(`(?i)\b(SELECT|INSERT INTO|UPDATE\s+\w+\s+SET|DELETE FROM)\b`)
	for _, f := range scan.Code() {
		if reSQL.MatchString(f.Content) {
			sqlFiles++
		}
	}
	if sqlFiles == 0 {
		return notApplicable()
	}
	return presence(scan, reParamQuery,
		"parameterized query usage detected",
		"SQL present but no parameterized query usage detected",
		types.StatusWarning,
		[]string{"Bind values with placeholders ($1, ?) instead of building statements"})
}

// DynamicCodeExecution flags eval-style constructs and shell execution built
// from dynamic input.
func DynamicCodeExecution(scan *scanner.Result) Outcome {
	return negative(scan.Code(), []pattern{
		{reEvalUsage, "eval-style dynamic code execution"},
		{reShellConcat, "shell command built from dynamic input"},
	}, types.StatusFail, []string{
		"Remove eval/new Function; use explicit dispatch instead",
		"Pass subprocess arguments as a list, never a concatenated string",
	})
}

// InputValidationCoverage measures how many request-handling files reference
// an input validation library.
func InputValidationCoverage(scan *scanner.Result) Outcome {
	return coverage(handlerFiles(scan), reInputValidate,
		"reference input validation", 0.3, 0.6,
		[]string{
			"Validate and sanitize every request payload with a schema validator",
		})
}
