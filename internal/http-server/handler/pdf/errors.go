package pdf

const (
	msgFileRequired     = "A PDF file is required under the `file` field."
	msgSingleFileOnly   = "Only one file is allowed under the `file` field."
	msgAtLeastTwoFiles  = "Please upload at least two PDF files using the `files` field."
	msgImagesRequired   = "Please upload JPG or PNG files under the `images` field."
	msgTooManyFiles     = "Too many files. At most 10 files are allowed per request."
	msgFileTooLarge     = "File too large. Each file must be under 20MB."
	msgInvalidMultipart = "Invalid request format"
	msgSomethingWrong   = "Something went wrong"
)
