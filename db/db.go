// Package db persists finished session results: a local CSV matching the
// original results format, and optionally a DynamoDB table for keeping
// history across machines.
package db

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/pkg/errors"

	"github.com/scaledrill/scaledrill/constants"
	"github.com/scaledrill/scaledrill/quiz"
)

const correctLabel = "CORRECT"
const incorrectLabel = "INCORRECT"

func outcomeLabel(correct bool) string {
	if correct {
		return correctLabel
	}
	return incorrectLabel
}

// WriteResultsCSV writes one semicolon-separated row per answered question:
// label, difficulty, CORRECT/INCORRECT.
func WriteResultsCSV(w io.Writer, s *quiz.Session) error {
	writer := csv.NewWriter(w)
	writer.Comma = constants.CatalogueSeparator

	for _, r := range s.Results() {
		record := []string{r.Label, strconv.Itoa(int(r.Difficulty)), outcomeLabel(r.Correct)}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "writing results row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "flushing results")
}

// SaveResultsFile writes the session results CSV to the given path.
func SaveResultsFile(path string, s *quiz.Session) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating results file %q", path)
	}
	defer f.Close()
	return WriteResultsCSV(f, s)
}

// PutSessionResults stores one item per answered question in the results
// table, keyed by session id and question index. The endpoint comes from
// DYNAMO_ENDPOINT and defaults to a local instance.
func PutSessionResults(s *quiz.Session) error {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return errors.Wrap(err, "creating DynamoDB session")
	}

	client := dynamodb.New(sess)
	sessionID := s.ID().String()

	for i, r := range s.Results() {
		item := map[string]*dynamodb.AttributeValue{
			"PK":         {S: aws.String(sessionID)},
			"SK":         {N: aws.String(strconv.Itoa(i))},
			"Label":      {S: aws.String(r.Label)},
			"Difficulty": {N: aws.String(strconv.Itoa(int(r.Difficulty)))},
			"Outcome":    {S: aws.String(outcomeLabel(r.Correct))},
		}
		input := &dynamodb.PutItemInput{
			TableName: aws.String(constants.ResultsTable),
			Item:      item,
		}
		if _, err := client.PutItem(input); err != nil {
			return errors.Wrapf(err, "storing result %d", i)
		}
	}

	return nil
}
