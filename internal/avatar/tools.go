// ABOUTME: Tool schema definitions advertised to the avatar service.
// ABOUTME: Mirrors the dispatcher's parameter contracts as JSON Schema.
package avatar

// toolDefinitions returns the six health tools the avatar agent may call
// back through the tool-handler URL. Parameter schemas must stay in lockstep
// with the dispatcher's parameter structs.
func (c *Client) toolDefinitions() []toolDefinition {
	handler := map[string]any{"url": c.config.ToolHandlerURL}

	return []toolDefinition{
		{
			Name:        "logExercise",
			Description: "Logs an exercise session or physical activity.",
			HTTPHandler: handler,
			Parameters: objectSchema(map[string]any{
				"activity": stringProp("The type of activity (e.g., Running, Yoga, Hiking)."),
				"duration": stringProp("The duration of the exercise in minutes."),
			}, "activity", "duration"),
		},
		{
			Name:        "logInsulin",
			Description: "Logs an insulin dosage at a specific time.",
			HTTPHandler: handler,
			Parameters: objectSchema(map[string]any{
				"dosage": stringProp("The number of insulin units."),
				"time":   stringProp("The time of the dosage in HH:mm format. Defaults to now if not provided."),
			}, "dosage"),
		},
		{
			Name:        "logMedication",
			Description: "Logs a medication intake at a specific time.",
			HTTPHandler: handler,
			Parameters: objectSchema(map[string]any{
				"name": stringProp("The name of the medication."),
				"time": stringProp("The time the medication was taken in HH:mm format. Defaults to now if not provided."),
			}, "name"),
		},
		{
			Name:        "updateSleepLog",
			Description: "Updates the sleep log for a specific day of the week.",
			HTTPHandler: handler,
			Parameters: objectSchema(map[string]any{
				"day": map[string]any{
					"type":        "string",
					"description": "The day of the week to update.",
					"enum": []string{
						"monday", "tuesday", "wednesday", "thursday",
						"friday", "saturday", "sunday",
					},
				},
				"hours": stringProp("The number of hours the user slept."),
			}, "day", "hours"),
		},
		{
			Name: "updateHealthRecord",
			Description: "Updates an existing health record (insulin, medication, or exercise). " +
				"This cannot be used for sleep data. For sleep, use updateSleepLog. " +
				"Use the searchTerm to find the record to update. If multiple records are found, " +
				"ask the user for clarification. If a time is provided in the user's query, use it to disambiguate.",
			HTTPHandler: handler,
			Parameters: objectSchema(map[string]any{
				"recordType": recordTypeProp("The type of record to update."),
				"searchTerm": stringProp(`The term to search for in the record to identify it (e.g., "aspirin", "basketball", "10 units").`),
				"updates": map[string]any{
					"type":        "object",
					"description": "The fields and new values to update.",
					"properties": map[string]any{
						"time":     map[string]any{"type": "string"},
						"dosage":   map[string]any{"type": "string"},
						"name":     map[string]any{"type": "string"},
						"activity": map[string]any{"type": "string"},
						"duration": map[string]any{"type": "string"},
					},
				},
			}, "recordType", "searchTerm"),
		},
		{
			Name:        "deleteHealthRecord",
			Description: "Deletes a health record (insulin, medication, or exercise) based on its ID.",
			HTTPHandler: handler,
			Parameters: objectSchema(map[string]any{
				"recordType": recordTypeProp("The type of record to delete."),
				"id":         stringProp("The ID of the record to delete."),
			}, "recordType", "id"),
		},
	}
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

func recordTypeProp(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
		"enum":        []string{"sleep", "insulin", "medication", "exercise"},
	}
}
