package schedserv

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Server is a fake rcubic scheduler for tests and manual exercise of
// rcubic-ctl. It terminates TLS with a freshly generated self-signed
// certificate and speaks the control protocol: GET per operation, reply body
// is the string-encoded boolean, success spelled exactly "True".
type Server struct {
	// Addr is the host:port the server actually bound, useful when the
	// requested address had port 0.
	Addr string

	// CACert is the path to a PEM file clients should pass as --cacert.
	CACert string

	httpSrv *http.Server
	stopped sync.Once
}

// Start launches the fake scheduler on listenAddr (e.g., 127.0.0.1:28002).
// The returned server answers every operation from a small in-memory table;
// call Stop when done.
func Start(listenAddr string) (*Server, error) {
	cert, certPEM, err := selfSignedCert()
	if err != nil {
		return nil, err
	}

	caFile, err := os.CreateTemp("", "schedserv-ca-*.pem")
	if err != nil {
		return nil, err
	}
	if _, err := caFile.Write(certPEM); err != nil {
		_ = caFile.Close()
		_ = os.Remove(caFile.Name())
		return nil, err
	}
	if err := caFile.Close(); err != nil {
		_ = os.Remove(caFile.Name())
		return nil, err
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		_ = os.Remove(caFile.Name())
		return nil, err
	}
	tlsLn := tls.NewListener(ln, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	})

	srv := &Server{
		Addr:    ln.Addr().String(),
		CACert:  caFile.Name(),
		httpSrv: &http.Server{Handler: newRouter()},
	}
	go func() { _ = srv.httpSrv.Serve(tlsLn) }()
	return srv, nil
}

// Stop shuts the server down and removes the CA certificate file.
func (s *Server) Stop() {
	s.stopped.Do(func() {
		_ = s.httpSrv.Close()
		_ = os.Remove(s.CACert)
	})
}

// newRouter wires the control routes over a small in-memory scheduler state.
func newRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	var mu sync.Mutex
	features := map[string]bool{
		"cancel":   true,
		"progress": true,
		"reclone":  true,
	}
	progress := map[string]int{}

	reply := func(c *gin.Context, ok bool) {
		if ok {
			c.String(http.StatusOK, "True")
		} else {
			c.String(http.StatusOK, "False")
		}
	}

	r.GET("/checkFeature", func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		reply(c, features[c.Query("feature")])
	})
	r.GET("/manualOverride", func(c *gin.Context) {
		reply(c, c.Query("script") != "")
	})
	r.GET("/progress", func(c *gin.Context) {
		script := c.Query("script")
		v, err := strconv.Atoi(c.Query("progress"))
		if script == "" || err != nil || v < 0 || v > 100 {
			reply(c, false)
			return
		}
		mu.Lock()
		progress[script] = v
		mu.Unlock()
		reply(c, true)
	})
	r.GET("/reschedule", func(c *gin.Context) {
		reply(c, c.Query("script") != "")
	})
	r.GET("/reclone", func(c *gin.Context) {
		reply(c, true)
	})
	r.GET("/cancel", func(c *gin.Context) {
		reply(c, true)
	})
	return r
}

// selfSignedCert generates a throwaway certificate valid for localhost and
// the loopback addresses.
func selfSignedCert() (tls.Certificate, []byte, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, nil, err
	}
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return tls.Certificate{}, nil, err
	}
	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: "schedserv"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		return tls.Certificate{}, nil, err
	}
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return tls.Certificate{}, nil, err
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, nil, err
	}
	return cert, certPEM, nil
}
