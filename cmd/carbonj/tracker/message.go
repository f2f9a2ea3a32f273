package tracker

import (
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
)

func BuildReport(runId string, document *entities.Document, host *entities.HostInfo, result *entities.ExecutionResult, estimate *entities.EmissionEstimate) *entities.Message {
	return &entities.Message{
		Type: entities.MESSAGE_TRACKING_RESULTS,
		Data: &entities.TrackingReport{
			RunId:      runId,
			FileName:   document.Path,
			Language:   document.LanguageId,
			SystemInfo: host,
			Execution:  result,
			Emissions:  estimate,
		},
	}
}

func BuildError(message string) *entities.Message {
	return &entities.Message{
		Type:    entities.MESSAGE_ERROR,
		Message: message,
	}
}
