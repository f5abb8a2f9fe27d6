package summarize

const chunkPromptTemplate = `You are a code analysis tool. The text below is one part of the lines added in a fork of a repository relative to its upstream project. List the concrete changes it introduces as short factual bullets, quoting a snippet from the text for each.

Part {{.Index}} of {{.Total}}:

{{.Text}}`

const combinePromptTemplate = `You are a technical summarizer. The bullets below describe parts of the changes a fork introduces relative to its upstream project. Merge them into a single concise Markdown summary: group related changes, describe the intent of each group in one or two sentences, and call out notable new dependencies, configuration or API surface.

{{.Text}}`
