package formatter

// IfInIfConditionFormatter formats if-in-if-condition issues. It is the
// general layout plus the fixed help line telling the user to pull the
// inner conditional out into a variable.
type IfInIfConditionFormatter struct{}

func (f *IfInIfConditionFormatter) IssueTemplate() string {
	return `{{header .Severity .Rule .MaxLineNumWidth .Filename .StartLine .StartColumn -}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent -}}
{{help .Note .Padding -}}
`
}
