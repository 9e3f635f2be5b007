package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	appconfig "github.com/shrijankc81-blip/Portfolio/internal/config"
	apperrors "github.com/shrijankc81-blip/Portfolio/pkg/errors"
	"github.com/shrijankc81-blip/Portfolio/pkg/utils"
)

func getS3Client() (*s3.Client, error) {
	cfg := appconfig.AppConfig
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID),
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithEndpointResolverWithOptions(r2Resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg), nil
}

// uploadFormFile stores the multipart file under the given folder and
// returns its public URL
func uploadFormFile(c *gin.Context, folder string) (string, error) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		file, header, err = c.Request.FormFile("image")
		if err != nil {
			return "", apperrors.BadRequest("No image file provided")
		}
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	key := fmt.Sprintf("%s/%s%s", folder, utils.GenerateID(), ext)

	client, err := getS3Client()
	if err != nil {
		return "", apperrors.Internal("Failed to init storage client")
	}

	cfg := appconfig.AppConfig
	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(cfg.R2BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(header.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", apperrors.Internal("Upload failed: " + err.Error())
	}

	publicURL := cfg.R2PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.r2.dev", cfg.R2BucketName)
	}

	return fmt.Sprintf("%s/%s", publicURL, key), nil
}

// UploadFile handles POST /api/upload (admin). Used by the admin panel
// for project images and the resume PDF.
func UploadFile(c *gin.Context) {
	folder := c.DefaultQuery("folder", "portfolio/uploads")
	url, err := uploadFormFile(c, folder)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
	})
}
