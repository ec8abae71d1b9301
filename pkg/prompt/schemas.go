package prompt

import (
	"google.golang.org/genai"
)

// CareerSkeletonSchema describes the discovery result: an array of career
// skeletons with only id, title, and emoji.
func CareerSkeletonSchema() (schema *genai.Schema) {
	schema = &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id": {
					Type:        genai.TypeString,
					Description: "A unique, URL-friendly slug for the career (e.g., 'data-scientist').",
				},
				"title": {
					Type:        genai.TypeString,
					Description: "The official name of the career.",
				},
				"emoji": {
					Type:        genai.TypeString,
					Description: "A single, relevant emoji that represents the career.",
				},
			},
			Required: []string{"id", "title", "emoji"},
		},
	}
	return schema
}

// QuickLookSchema describes the hydration fields added to a career card.
func QuickLookSchema() (schema *genai.Schema) {
	schema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeString,
				Description: "A concise, one-sentence summary of the career.",
			},
			"automationRisk": {
				Type:        genai.TypeString,
				Enum:        []string{"Low", "Medium", "High"},
				Description: "An assessment of the risk of automation.",
			},
			"demandGrowth": {
				Type:        genai.TypeString,
				Enum:        []string{"Low", "Medium", "High"},
				Description: "The projected growth in demand for this career.",
			},
			"isEmerging": {
				Type:        genai.TypeBoolean,
				Description: "Indicates if it is a relatively new or emerging field.",
			},
			"whoThisIsFor": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "An array of 3-4 short strings describing personality traits for a good fit.",
			},
			"relatedCareers": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "An array of 2-3 strings listing related career titles.",
			},
		},
		Required: []string{"summary", "automationRisk", "demandGrowth", "isEmerging", "whoThisIsFor", "relatedCareers"},
	}
	return schema
}

// UnpackedObjectSchema describes an object lifecycle result.
func UnpackedObjectSchema() (schema *genai.Schema) {
	schema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"objectName": {
				Type:        genai.TypeString,
				Description: "The name of the object being analyzed.",
			},
			"lifecycle": {
				Type:        genai.TypeArray,
				Description: "An array of lifecycle stages for the object.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"stageName": {
							Type:        genai.TypeString,
							Description: "The name of the lifecycle stage (e.g., 'Concept & Design').",
						},
						"emoji": {
							Type:        genai.TypeString,
							Description: "A single emoji that represents this stage.",
						},
						"description": {
							Type:        genai.TypeString,
							Description: "A one-sentence description of what happens in this stage.",
						},
						"careers": {
							Type:        genai.TypeArray,
							Description: "A list of 3-5 key career titles involved in this stage.",
							Items:       &genai.Schema{Type: genai.TypeString},
						},
					},
					Required: []string{"stageName", "emoji", "description", "careers"},
				},
			},
		},
		Required: []string{"objectName", "lifecycle"},
	}
	return schema
}

// PersonaProblemsSchema describes the problem set generated for a persona.
func PersonaProblemsSchema() (schema *genai.Schema) {
	schema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"personaTitle": {
				Type:        genai.TypeString,
				Description: "The title of the persona provided in the prompt.",
			},
			"problems": {
				Type:        genai.TypeArray,
				Description: "An array of 4-5 distinct problems or challenges this persona faces.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"problemTitle": {
							Type:        genai.TypeString,
							Description: "A short, descriptive title for the problem.",
						},
						"description": {
							Type:        genai.TypeString,
							Description: "A one-sentence description of the problem.",
						},
						"solvingCareers": {
							Type:        genai.TypeArray,
							Description: "A list of 3-5 career titles that could help solve this specific problem.",
							Items:       &genai.Schema{Type: genai.TypeString},
						},
					},
					Required: []string{"problemTitle", "description", "solvingCareers"},
				},
			},
		},
		Required: []string{"personaTitle", "problems"},
	}
	return schema
}

// PersonaSchema describes a single generated persona.
func PersonaSchema() (schema *genai.Schema) {
	schema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "A short, descriptive title for the persona (e.g., 'The Weekend DIY Enthusiast').",
			},
			"tagline": {
				Type:        genai.TypeString,
				Description: "A one-sentence tagline summarizing the persona's core motivation or challenge.",
			},
			"description": {
				Type:        genai.TypeString,
				Description: "A brief one-sentence description of the persona.",
			},
			"imageQuery": {
				Type:        genai.TypeString,
				Description: "A 2-3 word search query suitable for finding a relevant, high-quality stock photo for this persona (e.g., 'person gardening', 'man fixing bicycle').",
			},
		},
		Required: []string{"title", "tagline", "description", "imageQuery"},
	}
	return schema
}
