// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them. Every external collaborator of the pipeline (OCR engine,
// rasterizer, remote store, search tool) sits behind one of these narrow
// synchronous interfaces so the services are testable with mocks,
// independent of any real tool being installed.
//
// # Required Interfaces
//
//   - ContentStore: Keyed, create-only-if-absent text record persistence
//   - TextExtractor: One page image to text (Tesseract)
//   - Rasterizer: Images to PDF and PDF to images (pdfcpu)
//   - RemoteStore: List/upload/download against remote storage (rclone)
//   - SearchEngine: Full-text query over the store directory (ripgrep)
//
// # Optional Interfaces
//
//   - ScanJournal: Durable audit record of runs. Services accept nil.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
