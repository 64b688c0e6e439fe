package extract

// taskExtractionSystemPrompt is the fixed instruction sent to the model.
const taskExtractionSystemPrompt = `You are a task extraction assistant.

Extract every actionable task from the text you are given.

Return ONLY a valid JSON array of strings, one string per task.
No explanations.
No markdown.
No extra text.

Example input:
"Finish the report by Friday and remember to email the client. Also schedule the team meeting."

Example output:
["Finish the report by Friday", "Email the client", "Schedule the team meeting"]`

// buildExtractionPrompt builds the user prompt for task extraction.
func buildExtractionPrompt(rawText string) string {
	return "Text:\n" + rawText
}
