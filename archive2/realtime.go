package archive2

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"
)

// realtimeBucket is the public Unidata bucket NEXRAD chunks land in as a
// volume is collected; each volume is a header object followed by a
// sequence of raw compressed-block chunks.
const realtimeBucket = "unidata-nexrad-level2-chunks"

// ExtractRealtime fetches every chunk of a still-collecting (or just
// completed) volume for site/volume from S3 and decodes it as one archive.
// This is a read-only convenience wrapper around Decode; it does not change
// decode semantics, only where the bytes come from.
func ExtractRealtime(site string, volume int) (*Archive, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.AnonymousCredentials,
		Region:      aws.String("us-east-1"),
	})
	if err != nil {
		return nil, err
	}
	svc := s3.New(sess)
	bucket := aws.String(realtimeBucket)

	resp, err := svc.ListObjectsV2(&s3.ListObjectsV2Input{
		Bucket: bucket,
		Prefix: aws.String(fmt.Sprintf("%s/%d/", site, volume)),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Contents) == 0 {
		return nil, errors.New("no such volume number")
	}

	logrus.Debugf("realtime: %s volume %d has %d chunks", site, volume, len(resp.Contents))

	var buf bytes.Buffer
	for _, obj := range resp.Contents {
		chunk, err := svc.GetObject(&s3.GetObjectInput{
			Bucket: bucket,
			Key:    obj.Key,
		})
		if err != nil {
			return nil, err
		}
		_, err = io.Copy(&buf, chunk.Body)
		chunk.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	return Decode(&buf)
}
