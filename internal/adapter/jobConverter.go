package adapter

import (
	"fmt"
	"time"

	"github.com/pedrogillet1/koda-api/internal/api"
	"github.com/pedrogillet1/koda-api/internal/domain/docModel"
	"github.com/pedrogillet1/koda-api/internal/domain/jobModel"
	"github.com/pedrogillet1/koda-api/internal/marker"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id),
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:       string(job.Status),
		ChatResponse: ToChatResponse(job.JobPayload),
	}

	return api.JobResponse{
		Id:        job.Id,
		ChatId:    job.ChatId,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToChatResponse(payload jobModel.JobPayload) *api.ChatResponse {
	if payload.Answer == "" && len(payload.Segments) == 0 {
		return nil
	}

	return &api.ChatResponse{
		Question: payload.Question,
		Answer:   payload.Answer,
		Segments: ToAPISegments(payload.Segments),
		Sources:  payload.Sources,
	}
}

func ToAPISegments(segments []marker.Segment) []api.Segment {
	if segments == nil {
		return nil
	}
	out := make([]api.Segment, 0, len(segments))
	for _, seg := range segments {
		out = append(out, ToAPISegment(seg))
	}
	return out
}

func ToAPISegment(seg marker.Segment) api.Segment {
	converted := api.Segment{
		Type: string(seg.Type),
		Text: seg.Text,
	}
	if seg.Document != nil {
		converted.Document = &api.DocumentReference{
			DocumentID: seg.Document.DocumentID,
			Filename:   seg.Document.Filename,
			Extension:  seg.Document.Extension,
			MIMEType:   seg.Document.MIMEType,
			FileSize:   seg.Document.FileSize,
			FolderPath: seg.Document.FolderPath,
			Language:   seg.Document.Language,
			Topics:     seg.Document.Topics,
			CreatedAt:  seg.Document.CreatedAt,
			UpdatedAt:  seg.Document.UpdatedAt,
			PageCount:  seg.Document.PageCount,
			SlideCount: seg.Document.SlideCount,
			Context:    seg.Document.Context,
		}
	}
	if seg.LoadMore != nil {
		converted.LoadMore = &api.LoadMoreDescriptor{
			Total:     seg.LoadMore.Total,
			Shown:     seg.LoadMore.Shown,
			Remaining: seg.LoadMore.Remaining,
			ContextID: seg.LoadMore.ContextID,
		}
	}
	return converted
}

func ToMarkerCounts(counts marker.Counts) api.MarkerCounts {
	return api.MarkerCounts{
		Documents: counts.Documents,
		LoadMore:  counts.LoadMore,
	}
}

func ToDocumentResponse(doc docModel.Document) api.DocumentResponse {
	return api.DocumentResponse{
		Id:         doc.Id,
		Name:       doc.Name,
		Extension:  doc.Extension,
		MIMEType:   doc.MIMEType,
		FileSize:   doc.FileSize,
		PageCount:  doc.PageCount,
		IngestedAt: doc.LastIngestTimestamp,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		ChatId:    "",
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status:       string(api.JobStatusError),
			ChatResponse: ToChatResponse(jobModel.JobPayload{}),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
