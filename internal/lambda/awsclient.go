package lambda

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

type awsClient struct {
	svc lambdaiface.LambdaAPI
}

var _ Client = &awsClient{}

func NewAWSClient(region string) (*awsClient, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AWS session")
	}

	return &awsClient{svc: lambda.New(sess)}, nil
}

func NewAWSClientWithService(svc lambdaiface.LambdaAPI) *awsClient {
	return &awsClient{svc: svc}
}

func (c *awsClient) ListLayerVersions(ctx context.Context, layerName string) ([]*LayerVersion, error) {
	hclog.FromContext(ctx).Debug("Listing layer versions", "layer", layerName)

	var versions []*LayerVersion
	input := &lambda.ListLayerVersionsInput{
		LayerName: aws.String(layerName),
	}

	for {
		output, err := c.svc.ListLayerVersionsWithContext(ctx, input)
		if err != nil {
			return nil, errors.Wrapf(err, "fail to list versions of layer %s", layerName)
		}

		for _, lv := range output.LayerVersions {
			versions = append(versions, layerVersionFromSDK(lv))
		}

		if output.NextMarker == nil {
			break
		}

		input.Marker = output.NextMarker
	}

	return versions, nil
}

// LatestLayerVersion returns the most recent published version, or nil when
// the layer was never published.
func (c *awsClient) LatestLayerVersion(ctx context.Context, layerName string) (*LayerVersion, error) {
	versions, err := c.ListLayerVersions(ctx, layerName)
	if err != nil {
		return nil, err
	}

	var latest *LayerVersion
	for _, v := range versions {
		if latest == nil || v.Version > latest.Version {
			latest = v
		}
	}

	return latest, nil
}

func (c *awsClient) PublishLayerVersion(ctx context.Context, layerName, bucket, key, runtime, arch, description string) (*LayerVersion, error) {
	hclog.FromContext(ctx).Debug("Publishing layer version",
		"layer", layerName, "bucket", bucket, "key", key)

	input := &lambda.PublishLayerVersionInput{
		LayerName:   aws.String(layerName),
		Description: aws.String(description),
		Content: &lambda.LayerVersionContentInput{
			S3Bucket: aws.String(bucket),
			S3Key:    aws.String(key),
		},
	}

	if runtime != "" {
		input.CompatibleRuntimes = []*string{aws.String(runtime)}
	}

	if arch != "" {
		input.CompatibleArchitectures = []*string{aws.String(arch)}
	}

	output, err := c.svc.PublishLayerVersionWithContext(ctx, input)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to publish version of layer %s", layerName)
	}

	version := aws.Int64Value(output.Version)
	arn := aws.StringValue(output.LayerVersionArn)
	if version == 0 {
		// older API responses only carry the version inside the ARN
		version, err = versionFromARN(arn)
		if err != nil {
			return nil, err
		}
	}

	return &LayerVersion{
		Version:    version,
		ARN:        arn,
		CreatedAt:  time.Now().UTC(),
		CodeSHA256: contentSHA(output.Content),
	}, nil
}

func (c *awsClient) DeleteLayerVersion(ctx context.Context, layerName string, version int64) error {
	hclog.FromContext(ctx).Debug("Deleting layer version", "layer", layerName, "version", version)

	_, err := c.svc.DeleteLayerVersionWithContext(ctx, &lambda.DeleteLayerVersionInput{
		LayerName:     aws.String(layerName),
		VersionNumber: aws.Int64(version),
	})

	return errors.Wrapf(err, "fail to delete version %d of layer %s", version, layerName)
}

// AddLayerVersionPermission grants another account usage of a layer version
// and returns the policy statement.
func (c *awsClient) AddLayerVersionPermission(ctx context.Context, layerName string, version int64, accountID string) (string, error) {
	hclog.FromContext(ctx).Debug("Granting layer version permission",
		"layer", layerName, "version", version, "account", accountID)

	output, err := c.svc.AddLayerVersionPermissionWithContext(ctx, &lambda.AddLayerVersionPermissionInput{
		LayerName:     aws.String(layerName),
		VersionNumber: aws.Int64(version),
		StatementId:   aws.String(fmt.Sprintf("grant-%s-v%d", accountID, version)),
		Action:        aws.String("lambda:GetLayerVersion"),
		Principal:     aws.String(accountID),
	})
	if err != nil {
		return "", errors.Wrapf(err, "fail to grant account %s access to layer %s version %d",
			accountID, layerName, version)
	}

	return aws.StringValue(output.Statement), nil
}

func layerVersionFromSDK(lv *lambda.LayerVersionsListItem) *LayerVersion {
	v := &LayerVersion{
		Version: aws.Int64Value(lv.Version),
		ARN:     aws.StringValue(lv.LayerVersionArn),
	}

	if created := aws.StringValue(lv.CreatedDate); created != "" {
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			v.CreatedAt = t
		}
	}

	for _, r := range lv.CompatibleRuntimes {
		v.Runtimes = append(v.Runtimes, aws.StringValue(r))
	}

	for _, a := range lv.CompatibleArchitectures {
		v.Archs = append(v.Archs, aws.StringValue(a))
	}

	return v
}

func versionFromARN(arn string) (int64, error) {
	parts := strings.Split(arn, ":")
	version, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)

	return version, errors.Wrapf(err, "fail to parse layer version out of arn %s", arn)
}

func contentSHA(content *lambda.LayerVersionContentOutput) string {
	if content == nil {
		return ""
	}

	return aws.StringValue(content.CodeSha256)
}
