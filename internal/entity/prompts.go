// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entity

const entitiesSystemPrompt = `You are a helpful assistant that extracts entities from text and returns them in JSON format.`

const entitiesPromptTemplate = `Extract %s from the following text.
Return the result as a JSON object with a single key "entities" holding an
array of strings containing only the entity values.

Text:
%s

Example output format:
{"entities": ["entity1", "entity2", "entity3"]}

Return only the JSON object, no additional text.`

const namedEntitiesSystemPrompt = `You are a helpful assistant that extracts and categorizes named entities from text.`

const namedEntitiesPromptTemplate = `Extract %s from the following text and categorize them.
Return the result as a JSON object with entity types as keys and arrays of
entity values.

Text:
%s

Example output format:
{
  "PERSON": ["John Doe", "Jane Smith"],
  "ORGANIZATION": ["Acme Corp"],
  "DATE": ["January 1, 2024"],
  "LOCATION": ["New York"]
}

Return only the JSON object, no additional text.`
