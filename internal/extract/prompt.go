package extract

import (
	"fmt"
	"time"
)

// taskParsingPrompt is the instruction sent to the text-understanding
// service for the delegated strategy.
const taskParsingPrompt = `You are an assistant that parses natural language messages into structured task data.
Parse the following message and extract ALL task information.
Support both English and Indonesian, including informal and slang register, without being told which language is used.

RULES:
1. Each independently actionable clause (bullet point, numbered item, separate sentence, or compound-sentence action) becomes one task, in source order.
2. If multiple tasks are found, return a JSON array of objects; if exactly one, return a single JSON object (never a one-element array).
3. For each task produce:
   - title: concise action phrase (required)
   - description: extra detail, or null
   - due_date: ISO-8601 UTC with millisecond precision (e.g. "2025-10-17T14:00:00.000Z"), or null when no date is stated
   - status: "todo", "in_progress", or "completed"
4. Resolve relative dates in both languages (tomorrow/besok, next week/minggu depan, next monday/senin depan) against the current date below.
5. If a date is stated without a time, default the time to 09:00 local; if no date is stated at all, due_date is null.
6. Status precedence, first match wins:
   - completed: done, finished, completed, already, selesai, sudah, telah selesai
   - in_progress: working on, starting, ongoing, in progress, sedang, mulai, proses
   - otherwise: todo
7. If no actionable task exists anywhere in the message, return {"error": "Could not understand the request format"}.
8. Return ONLY valid JSON. No markdown, no code fences, no commentary.

Current date: %s
Timezone: %s

Message: %q

Respond with valid JSON only:`

// buildPrompt renders the parsing prompt with the reference instant.
func buildPrompt(utterance string, ref Reference) string {
	loc := ref.Location
	if loc == nil {
		loc = time.UTC
	}
	return fmt.Sprintf(taskParsingPrompt,
		ref.Now.In(loc).Format(time.RFC3339),
		loc.String(),
		utterance,
	)
}
