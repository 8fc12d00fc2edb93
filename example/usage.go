package main

import (
	"fmt"
	"os"

	"github.com/halfpixel/qrgen"
)

func main() {
	content := "https://www.google.com"
	filename := "test_qr.png"

	fmt.Printf("Generating QR code for: %s\n", content)

	qr, err := qrgen.Encode([]byte(content), qrgen.Options{Mode: qrgen.ModeDynamic, Level: qrgen.LevelM})
	if err != nil {
		fmt.Printf("Error creating QR: %v\n", err)
		return
	}
	fmt.Printf("Chose version %d, mask pattern %d\n", qr.Symbol.Version, qr.MaskPattern)

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := qr.WritePNG(file, qrgen.DefaultScale, qrgen.DefaultQuietZone); err != nil {
		fmt.Printf("Error writing PNG: %v\n", err)
		return
	}

	fmt.Printf("Successfully saved QR code to %s\n", filename)
}
