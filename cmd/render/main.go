package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
	"github.com/nfnt/resize"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
	"github.com/castlight/go-whitted-raytracer/pkg/loaders"
	"github.com/castlight/go-whitted-raytracer/pkg/material"
	"github.com/castlight/go-whitted-raytracer/pkg/renderer"
	"github.com/castlight/go-whitted-raytracer/pkg/scene"
	"github.com/castlight/go-whitted-raytracer/pkg/world"
)

const uploadTimeout = 30 * time.Second

// uploadConfig holds the optional S3 destination, read from the
// environment. An empty bucket disables uploads.
type uploadConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func loadUploadConfig() uploadConfig {
	return uploadConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
}

func main() {
	sceneName := flag.String("scene", "default", fmt.Sprintf("Scene to render, one of %v", scene.Names()))
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	fov := flag.Float64("fov", 0, "Field of view in radians (0 keeps the scene default)")
	workers := flag.Int("workers", 0, "Render worker count (0 uses all CPUs)")
	fuel := flag.Int("fuel", world.DefaultFuel, "Reflection and refraction recursion budget")
	output := flag.String("out", "render.png", "Output PNG path")
	objPath := flag.String("obj", "", "Wavefront OBJ model to insert into the scene")
	thumbWidth := flag.Uint("thumb", 0, "Thumbnail width in pixels (0 disables)")
	flag.Parse()

	_ = godotenv.Load(".env")

	builder, err := scene.Lookup(*sceneName)
	if err != nil {
		log.Fatal(err)
	}
	s := builder(*width, *height, *fov)

	if *objPath != "" {
		result, err := loaders.ParseObjFile(*objPath, s.Builder, linalg.Identity(), material.Default())
		if err != nil {
			log.Fatalf("Loading model: %v", err)
		}
		if n := len(result.Ignored); n > 0 {
			log.Printf("Skipped %d unrecognized lines in %s", n, *objPath)
		}
		s.World.Elements = append(s.World.Elements, result.Element)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Rendering %s at %dx%d", *sceneName, *width, *height)
	start := time.Now()
	r := renderer.NewRenderer(*workers, *fuel)
	r.SetLogger(log.Default())
	canvas := r.Render(ctx, s.Camera, s.World)
	if err := ctx.Err(); err != nil {
		log.Fatalf("Render interrupted: %v", err)
	}
	log.Printf("Rendered in %v", time.Since(start))

	var image bytes.Buffer
	if err := canvas.WritePNG(&image); err != nil {
		log.Fatalf("Encoding PNG: %v", err)
	}
	if err := os.WriteFile(*output, image.Bytes(), 0o644); err != nil {
		log.Fatalf("Writing %s: %v", *output, err)
	}
	log.Printf("Wrote %s (%d bytes)", *output, image.Len())

	var thumb bytes.Buffer
	if *thumbWidth > 0 {
		small := resize.Resize(*thumbWidth, 0, canvas.Image(), resize.Bilinear)
		if err := png.Encode(&thumb, small); err != nil {
			log.Fatalf("Encoding thumbnail: %v", err)
		}
		thumbPath := thumbnailPath(*output)
		if err := os.WriteFile(thumbPath, thumb.Bytes(), 0o644); err != nil {
			log.Fatalf("Writing %s: %v", thumbPath, err)
		}
		log.Printf("Wrote %s (%d bytes)", thumbPath, thumb.Len())
	}

	cfg := loadUploadConfig()
	if cfg.Bucket == "" {
		return
	}

	uploader, err := newUploader(cfg)
	if err != nil {
		log.Fatalf("Creating S3 session: %v", err)
	}
	if err := uploader.upload(ctx, image.Bytes(), filepath.Base(*output)); err != nil {
		log.Fatalf("Upload failed: %v", err)
	}
	if thumb.Len() > 0 {
		if err := uploader.upload(ctx, thumb.Bytes(), filepath.Base(thumbnailPath(*output))); err != nil {
			log.Fatalf("Thumbnail upload failed: %v", err)
		}
	}
}

func thumbnailPath(output string) string {
	ext := filepath.Ext(output)
	return output[:len(output)-len(ext)] + "_thumb" + ext
}

type uploader struct {
	client *s3.S3
	bucket string
}

func newUploader(cfg uploadConfig) (*uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return &uploader{client: s3.New(sess), bucket: cfg.Bucket}, nil
}

func (u *uploader) upload(ctx context.Context, data []byte, key string) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	log.Printf("Uploaded %s to %s (%d bytes)", key, u.bucket, len(data))
	return nil
}
