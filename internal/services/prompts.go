package services

import "fmt"

const summaryPromptTemplate = `Analyze this team chat conversation and provide:
1. A concise summary of the main discussion points
2. Extract any tasks or action items mentioned, including who should do them

Chat conversation:
%s

Please respond in JSON format:
{
  "summary": "brief summary here",
  "tasks": [
    {
      "title": "task title",
      "description": "task description",
      "assignedTo": "person name or 'unassigned'"
    }
  ]
}`

const techSpecPromptTemplate = `You are a senior software architect. Based on the team chat conversation below, infer a technical specification for what the team is building.

Chat conversation:
%s

Produce a structured markdown document with these sections:
## Goals
## Functional Requirements
## Data Model & API Sketch
## Integration Points
## Non-Functional Requirements
## Open Questions

Be concrete where the conversation gives detail and explicit about assumptions where it does not. Respond with the markdown document only.`

func buildSummaryPrompt(transcript string) string {
	return fmt.Sprintf(summaryPromptTemplate, transcript)
}

func buildTechSpecPrompt(transcript string) string {
	return fmt.Sprintf(techSpecPromptTemplate, transcript)
}
