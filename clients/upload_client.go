package clients

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/codek7-services/codek7-backend/log"
	"github.com/codek7-services/codek7-backend/pb"
	"github.com/codek7-services/codek7-backend/video"
	"google.golang.org/grpc"
)

const (
	// UploadChunkSize is the read buffer for artifact streaming.
	UploadChunkSize = 1024 * 1024
	// uploadStreamBuffer bounds the frame channel so slow streams apply
	// backpressure to the file reader.
	uploadStreamBuffer = 16
)

// Uploader streams a single local artifact to the repo service. Distinct
// uploads are independent and may run concurrently on one client.
type Uploader interface {
	Upload(ctx context.Context, path, videoID string, submitter video.Submitter) (*pb.VideoMetadataResponse, error)
}

// RepoClient multiplexes many upload streams over one shared gRPC connection.
type RepoClient struct {
	client pb.RepoServiceClient
}

func NewRepoClient(conn *grpc.ClientConn) *RepoClient {
	return &RepoClient{client: pb.NewRepoServiceClient(conn)}
}

// Upload sends one metadata frame followed by the file's contents in 1MiB
// chunk frames with strictly incrementing chunk numbers, then closes the send
// direction and waits for the server's acknowledgement. The first error wins;
// there is no partial success and no retry.
//
// The metadata frame's file_name carries the artifact path while chunk frames
// carry the video id. The repo service relies on this asymmetry to classify
// artifacts, so it must be preserved.
func (c *RepoClient) Upload(ctx context.Context, path, videoID string, submitter video.Submitter) (*pb.VideoMetadataResponse, error) {
	var fileSize int64
	if info, err := os.Stat(path); err == nil {
		fileSize = info.Size()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for upload: %w", path, err)
	}
	defer file.Close()

	stream, err := c.client.UploadVideo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start upload stream for %s: %w", path, err)
	}

	// The sender goroutine drains the bounded frame channel; writes to it
	// suspend the reader when the stream backs up. On a send error the
	// sender keeps draining so the producer can never block forever.
	frames := make(chan *pb.UploadVideoRequest, uploadStreamBuffer)
	senderDone := make(chan error, 1)
	go func() {
		var sendErr error
		for frame := range frames {
			if sendErr != nil {
				continue
			}
			sendErr = stream.Send(frame)
		}
		senderDone <- sendErr
	}()

	frames <- &pb.UploadVideoRequest{
		Data: &pb.UploadVideoRequest_Metadata{
			Metadata: &pb.VideoMetadata{
				UserId:      submitter.UserID,
				Title:       submitter.Title,
				Description: submitter.Description,
				FileName:    path,
				FileSize:    fileSize,
			},
		},
	}

	var readErr error
	var chunkNumber int32
	buffer := make([]byte, UploadChunkSize)
	for {
		n, err := file.Read(buffer)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buffer[:n])
			frames <- &pb.UploadVideoRequest{
				Data: &pb.UploadVideoRequest_Chunk{
					Chunk: &pb.VideoChunk{
						ChunkNumber: chunkNumber,
						Data:        data,
						FileName:    videoID,
					},
				},
			}
			chunkNumber++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			readErr = fmt.Errorf("failed to read %s during upload: %w", path, err)
			break
		}
	}
	close(frames)

	sendErr := <-senderDone
	if readErr != nil {
		return nil, readErr
	}
	if sendErr != nil {
		return nil, fmt.Errorf("failed to send frame for %s: %w", path, sendErr)
	}

	response, err := stream.CloseAndRecv()
	if err != nil {
		return nil, fmt.Errorf("upload of %s rejected by repo service: %w", path, err)
	}
	log.LogCtx(ctx, "artifact uploaded", "path", path, "bytes", fileSize)
	return response, nil
}
