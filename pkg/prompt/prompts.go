// Package prompt builds the instruction text and structured-output schemas
// for every generative call the application makes. Builders are pure: given
// the same parameters they produce the same prompt, and they perform no I/O.
package prompt

import (
	"fmt"
	"strings"

	"github.com/nikogura/career-compass/pkg/career"
)

// InitialDiscoverCount is the number of careers requested by a fresh search.
const InitialDiscoverCount = 10

// MoreDiscoverCount is the number of careers requested by a load-more page.
// A page with fewer results marks the supply as exhausted.
const MoreDiscoverCount = 4

// BuildDiscoverPrompt creates the initial career discovery prompt.
func BuildDiscoverPrompt(interests string) (prompt string) {
	prompt = fmt.Sprintf(`Analyze the user's interests: "%s".
Generate a list of %d diverse and relevant career paths.
For each career, provide ONLY a unique URL-friendly id, its title, and a single representative emoji.
The entire output must be a single, valid JSON array. Do not add any other text.`,
		interests, InitialDiscoverCount)

	return prompt
}

// BuildDiscoverMorePrompt creates the pagination prompt. The existing ids are
// embedded as an exclusion list, one per line; the model may return fewer
// than the requested count, or an empty array, when the supply is exhausted.
func BuildDiscoverMorePrompt(interests string, existingIDs []string) (prompt string) {
	prompt = fmt.Sprintf(`Analyze the user's interests: "%s".
Generate a list of %d additional, diverse, and relevant career paths.
IMPORTANT: Do NOT include any careers from the following list of IDs, as the user has already seen them:
- %s

If you cannot find %d new distinct careers, generate as many as you can. If none, return an empty array.
For each career, provide ONLY a unique URL-friendly id, its title, and a single representative emoji.
The entire output must be a single, valid JSON array.`,
		interests, MoreDiscoverCount, strings.Join(existingIDs, "\n- "), MoreDiscoverCount)

	return prompt
}

// BuildHydratePrompt creates the quick-look hydration prompt for one career.
func BuildHydratePrompt(careerTitle string) (prompt string) {
	prompt = fmt.Sprintf(`Generate the "Quick Look" details for the career: "%s".
Provide the summary, automation risk, demand growth, emerging status, target audience, and related careers.
The entire output must be a single, valid JSON object.`, careerTitle)

	return prompt
}

// BuildUnpackPrompt creates the object lifecycle deconstruction prompt.
func BuildUnpackPrompt(objectName string) (prompt string) {
	prompt = fmt.Sprintf(`Deconstruct the object "%s" into its key lifecycle stages, from conception to end-of-life.
The stages should be in chronological order. Include at least 5 distinct stages.
Example stages: Concept & Design, Raw Material Sourcing, Manufacturing & Engineering, Logistics & Distribution, Marketing & Sales, Customer Support & Maintenance, Recycling & Disposal.

For each stage, provide a name, a relevant emoji, a brief one-sentence description, and a list of 3-5 key careers involved in that stage.
The output must be a single, valid JSON object conforming to the provided schema. Do not include any introductory text, explanations, or markdown formatting. The output must be only the JSON object.`, objectName)

	return prompt
}

// BuildPersonaProblemsPrompt creates the problem-set prompt for a persona.
func BuildPersonaProblemsPrompt(personaTitle, personaTagline string) (prompt string) {
	prompt = fmt.Sprintf(`Analyze the following persona and generate a set of 4-5 distinct problems or challenges they face, along with a list of careers that could help solve each problem.

Persona Title: "%s"
Persona Description: "%s"

The output must be a single, valid JSON object conforming to the provided schema. Do not include any introductory text, explanations, or markdown formatting. The output must be only the JSON object.`, personaTitle, personaTagline)

	return prompt
}

// BuildGeneratePersonaPrompt creates the persona generation prompt from a
// free-text description.
func BuildGeneratePersonaPrompt(description string) (prompt string) {
	prompt = fmt.Sprintf(`Generate a unique and interesting user persona based on the following description.
The persona should be a character profile that could be used to brainstorm products or services.
The title should be creative and evocative.

User Description: "%s"

The output must be a single, valid JSON object conforming to the provided schema. Do not include any introductory text, explanations, or markdown formatting.`, description)

	return prompt
}

// ChatSystemInstruction returns the system instruction that scopes a chat
// session to one career topic.
func ChatSystemInstruction(careerTitle string) (instruction string) {
	instruction = fmt.Sprintf(`You are an expert career counselor. The user is asking about the role of a "%s". Your answers should be helpful, encouraging, and focused on providing practical information about this specific career. Be concise and conversational.`, careerTitle)

	return instruction
}

// ChatGreeting returns the canned opening model message for a chat session.
func ChatGreeting(careerTitle string) (greeting string) {
	greeting = fmt.Sprintf("Let's talk about being a %s. What's on your mind? You can ask me anything or choose a preset question below.", careerTitle)
	return greeting
}

// BuildReportPrompt creates the full market report prompt. The call behind it
// is search-grounded and returns free text around a JSON object, so no
// response schema accompanies this prompt; the expected shape is spelled out
// in the instruction instead. The astrology sub-block is included only when
// the personalization data carries complete birth details.
//
//nolint:funlen // Prompt template mirrors the full report structure
func BuildReportPrompt(careerTitle string, p career.PersonalizationData) (prompt string) {
	age := "Not provided"
	if p.Age > 0 {
		age = fmt.Sprintf("%d", p.Age)
	}

	abroad := "No"
	if p.IsOpenToAbroad {
		abroad = "Yes"
	}

	astrologySection := `- **astrologicalInsight**: The user did not provide birth details. Provide a fun, generalized, one-paragraph astrological insight related to the career field in general. Do NOT include a "compatibilityScore".`
	if p.HasAstrology() {
		astrologySection = fmt.Sprintf(`- **astrologicalInsight**: The user has provided their birth details:
  - Date of Birth: %s
  - Time of Birth: %s
  - Place of Birth: %s
  Adopt the persona of a highly experienced Vedic Astrologer with 30+ years of expertise. Provide a wise, insightful, and guiding analysis (2-3 paragraphs) of how this career aligns with their astrological chart. Conclude with a "compatibilityScore" out of 10 (e.g., 8.5, a float with one decimal place).`,
			p.Astrology.DateOfBirth, p.Astrology.TimeOfBirth, p.Astrology.PlaceOfBirth)
	}

	prompt = fmt.Sprintf(`Generate a comprehensive, data-rich, and personalized "Full Market Report" for the career of a "%s".

**User Personalization Data:**
- Age: %s
- Country: %s
- Open to International Opportunities: %s

You must act as an expert career analyst. Use Google Search to find the latest, most reputable data (from the last 12-24 months), especially for market demand, salary, and educational institutions.
Synthesize information to provide actionable insights. All data points must be backed by sources. Be both comprehensive and concise.
The entire output must be a single, valid JSON object. Do not include any introductory text, explanations, or markdown formatting.

**Detailed Instructions:**
- **personalizedNotes**: Based on the user's age and country, write a short, encouraging, one-paragraph note. Mention the range of educational options available in the report, from top-tier universities to affordable public institutions and skill-first online courses.
- **financialInsights**: All salary data must be localized to the user's country: %s.
- **actionablePath**: Structure this section into three distinct tiers:
  - **Tier 1: Top-Tier & Aspirational Universities**: In 'topTierUniversities', list 5-10 top-ranked universities for this field. If the user is open to international options, this list should include global leaders. ALWAYS include estimated annual tuition.
  - **Tier 2: High-Quality & Accessible Public/State Universities**: In 'accessiblePublicUniversities', list 5-10 well-regarded, affordable public or state universities specifically in %s with strong programs. ALWAYS include estimated annual tuition.
  - **Tier 3: The "Skill-First" & Alternative Pathways**:
    - **recognizedCertifications**: List 3-5 high-value, industry-recognized certifications. For each, provide the name, issuing body, estimated cost, and time to complete.
    - **topOnlineCourses**: List 3-5 top-rated online courses or bootcamps. For each, provide the name, platform, estimated cost, time to complete, and a verified URL.

%s

Your entire response must be ONLY the JSON object that conforms to the following structure. Do not add comments.
{
  "careerTitle": "string",
  "personalizedNotes": "string",
  "executiveSummary": {
    "careerDefinition": "string",
    "whyItMatters": "string",
    "keyVitals": {
      "averageExperienceLevel": "Entry" | "Mid-level" | "Senior",
      "workEnvironment": "string",
      "typicalWorkHours": "string",
      "requiredEducationLevel": "string"
    }
  },
  "marketDemand": {
    "careerGrowthAndDemand": {
      "currentDemandAnalysis": "string",
      "projected10YearGrowth": { "percentage": number, "description": "string" },
      "jobPostingTrendsGraphData": [{ "year": number, "trend": number (a value between 0 and 100 representing percentage) }]
    },
    "aiDisruptionAndAutomationRisk": {
      "analysis": "string",
      "automationRiskScore": "Low" | "Medium" | "High",
      "rationale": "string"
    }
  },
  "financialInsights": {
    "salaryData": {
      "entryLevel": { "low": number, "high": number, "currency": "string" },
      "midLevel": { "low": number, "high": number, "currency": "string" },
      "seniorLevel": { "low": number, "high": number, "currency": "string" }
    },
    "compensationDetails": "string",
    "topPayingCompanies": ["string"],
    "geographicVariance": "string"
  },
  "dayInTheLife": {
    "typicalDay": "string",
    "hardSkills": ["string"],
    "softSkills": ["string"]
  },
  "isThisForYou": {
    "pros": ["string"],
    "cons": ["string"],
    "personalityProfile": "string"
  },
  "actionablePath": {
    "educationalPathways": {
      "degreePaths": ["string"],
      "topTierUniversities": [{ "name": "string", "estimatedAnnualTuition": "string", "rank": number, "url": "string" }],
      "accessiblePublicUniversities": [{ "name": "string", "estimatedAnnualTuition": "string", "rank": number, "url": "string" }]
    },
    "skillFirstPathways": {
      "recognizedCertifications": [{ "name": "string", "issuingBody": "string", "estimatedCost": "string", "timeToComplete": "string", "url": "string" }],
      "topOnlineCourses": [{ "name": "string", "platform": "string", "estimatedCost": "string", "timeToComplete": "string", "url": "string" }]
    },
    "firstStepsForBeginner": ["string"]
  },
  "astrologicalInsight": {
    "insight": "string",
    "compatibilityScore": number
  },
  "sources": [{ "title": "string", "uri": "string" }]
}`,
		careerTitle, age, p.Country, abroad,
		p.Country, p.Country, astrologySection)

	return prompt
}
