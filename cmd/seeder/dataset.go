// cmd/seeder/dataset.go
package main

// seedRow maps column names to values for a single insert
type seedRow map[string]any

// seedTable is one table worth of rows
type seedTable struct {
	Name string
	Rows []seedRow
}

// tableOrder lists every zoo table parents first, so foreign keys resolve
var tableOrder = []string{
	"pengguna", "pengunjung",
	"dokter_hewan", "spesialisasi", "pelatih_hewan", "penjaga_hewan", "staf_admin",
	"habitat", "hewan",
	"fasilitas", "atraksi", "wahana", "berpartisipasi",
	"pakan", "jadwal_pemeriksaan_kesehatan", "catatan_medis",
	"reservasi",
	"adopter", "individu", "organisasi", "adopsi",
}

const (
	bimaID  = "5b0ab2f3-6c4e-4cb9-9d4e-0f5a3e1d2c11"
	lunaID  = "8d7c0e19-2f43-4a51-b6a7-3c9e5d1f0a22"
	tirtaID = "c2e4f6a8-1b3d-4e5f-8a7b-9c0d1e2f3a33"

	budiAdopterID  = "0f1e2d3c-4b5a-4968-8776-a5b4c3d2e144"
	lestariAdopter = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c55"
)

// demoDataset is the built-in data loaded when no workbook is given
func demoDataset() []seedTable {
	return []seedTable{
		{Name: "pengguna", Rows: []seedRow{
			{"username": "admin", "email": "admin@sizopi.id", "password": "admin123", "nama_depan": "Rina", "nama_belakang": "Wijaya", "no_telepon": "081100000001"},
			{"username": "drsinta", "email": "sinta@sizopi.id", "password": "dokter123", "nama_depan": "Sinta", "nama_belakang": "Permata", "no_telepon": "081100000002"},
			{"username": "joko", "email": "joko@sizopi.id", "password": "penjaga123", "nama_depan": "Joko", "nama_belakang": "Susilo", "no_telepon": "081100000003"},
			{"username": "dewi", "email": "dewi@sizopi.id", "password": "pelatih123", "nama_depan": "Dewi", "nama_belakang": "Anggraini", "no_telepon": "081100000004"},
			{"username": "budi", "email": "budi@example.com", "password": "rahasia123", "nama_depan": "Budi", "nama_belakang": "Santoso", "no_telepon": "081234567890"},
			{"username": "lestari", "email": "cs@lestari.or.id", "password": "lestari123", "nama_depan": "Ayu", "nama_tengah": "Putri", "nama_belakang": "Lestari", "no_telepon": "081298765432"},
		}},
		{Name: "pengunjung", Rows: []seedRow{
			{"username_p": "budi", "alamat": "Jl. Margonda Raya 1, Depok", "tgl_lahir": "1995-03-14"},
			{"username_p": "lestari", "alamat": "Jl. Sudirman 45, Jakarta", "tgl_lahir": "1988-11-02"},
		}},
		{Name: "dokter_hewan", Rows: []seedRow{
			{"username_dh": "drsinta", "no_str": "STR-2019-0042"},
		}},
		{Name: "spesialisasi", Rows: []seedRow{
			{"username_sh": "drsinta", "nama_spesialisasi": "Mamalia Besar"},
			{"username_sh": "drsinta", "nama_spesialisasi": "Reptil"},
		}},
		{Name: "pelatih_hewan", Rows: []seedRow{
			{"username_lh": "dewi", "id_staf": "6a1f3c8e-7d2b-4e9a-a0c5-2b8d4f6e1a01"},
		}},
		{Name: "penjaga_hewan", Rows: []seedRow{
			{"username_jh": "joko", "id_staf": "7b2e4d9f-8e3c-4fab-b1d6-3c9e5a7f2b02"},
		}},
		{Name: "staf_admin", Rows: []seedRow{
			{"username_sa": "admin", "id_staf": "8c3f5eaf-9f4d-4abc-82e7-4daf6b8a3c03"},
		}},
		{Name: "habitat", Rows: []seedRow{
			{"nama": "Savana", "luas_area": "1250.50", "kapasitas": 12, "status": "Aktif"},
			{"nama": "Hutan Hujan", "luas_area": "980.00", "kapasitas": 20, "status": "Aktif"},
			{"nama": "Akuarium Tirta", "luas_area": "400.75", "kapasitas": 30, "status": "Renovasi"},
		}},
		{Name: "hewan", Rows: []seedRow{
			{"id": bimaID, "nama": "Bima", "spesies": "Panthera leo", "asal_hewan": "Taman Safari", "tanggal_lahir": "2016-05-10", "status_kesehatan": "Sehat", "nama_habitat": "Savana", "url_foto": "https://img.sizopi.id/bima.jpg"},
			{"id": lunaID, "nama": "Luna", "spesies": "Pongo pygmaeus", "asal_hewan": "Kalimantan", "tanggal_lahir": "2012-09-21", "status_kesehatan": "Sehat", "nama_habitat": "Hutan Hujan", "url_foto": "https://img.sizopi.id/luna.jpg"},
			{"id": tirtaID, "spesies": "Chelonia mydas", "asal_hewan": "Pangumbahan", "status_kesehatan": "Dalam Pemantauan", "nama_habitat": "Akuarium Tirta", "url_foto": "https://img.sizopi.id/tirta.jpg"},
		}},
		{Name: "fasilitas", Rows: []seedRow{
			{"nama": "Pertunjukan Singa", "jadwal": "2025-08-17T10:00:00", "kapasitas_max": 100},
			{"nama": "Kereta Safari", "jadwal": "2025-08-17T09:00:00", "kapasitas_max": 40},
		}},
		{Name: "atraksi", Rows: []seedRow{
			{"nama_atraksi": "Pertunjukan Singa", "lokasi": "Arena Savana"},
		}},
		{Name: "wahana", Rows: []seedRow{
			{"nama_wahana": "Kereta Safari", "peraturan": "Tinggi minimal 120 cm. Dilarang berdiri selama perjalanan."},
		}},
		{Name: "berpartisipasi", Rows: []seedRow{
			{"nama_fasilitas": "Pertunjukan Singa", "id_hewan": bimaID},
		}},
		{Name: "pakan", Rows: []seedRow{
			{"id_hewan": bimaID, "jadwal": "2025-06-01T08:00:00", "jenis": "Daging sapi", "jumlah": 5, "status": "terjadwal", "username_jh": "joko"},
			{"id_hewan": lunaID, "jadwal": "2025-06-01T09:30:00", "jenis": "Buah campur", "jumlah": 3, "status": "selesai", "username_jh": "joko"},
		}},
		{Name: "jadwal_pemeriksaan_kesehatan", Rows: []seedRow{
			{"id_hewan": bimaID, "tgl_pemeriksaan_selanjutnya": "2025-07-01", "freq_pemeriksaan_rutin": 3},
			{"id_hewan": tirtaID, "tgl_pemeriksaan_selanjutnya": "2025-06-15", "freq_pemeriksaan_rutin": 6},
		}},
		{Name: "catatan_medis", Rows: []seedRow{
			{"id_hewan": bimaID, "tanggal_pemeriksaan": "2025-05-20", "username_dh": "drsinta", "status_kesehatan": "Sehat"},
			{"id_hewan": tirtaID, "tanggal_pemeriksaan": "2025-05-22", "username_dh": "drsinta", "status_kesehatan": "Dalam Pemantauan", "diagnosis": "Luka pada sirip", "pengobatan": "Antiseptik topikal"},
		}},
		{Name: "reservasi", Rows: []seedRow{
			{"username_p": "budi", "nama_fasilitas": "Pertunjukan Singa", "tanggal_kunjungan": "2025-08-17", "jumlah_tiket": 2, "status": "Terjadwal"},
			{"username_p": "lestari", "nama_fasilitas": "Kereta Safari", "tanggal_kunjungan": "2025-08-17", "jumlah_tiket": 4, "status": "Terjadwal"},
		}},
		{Name: "adopter", Rows: []seedRow{
			{"id_adopter": budiAdopterID, "username_adopter": "budi", "total_kontribusi": "0"},
			{"id_adopter": lestariAdopter, "username_adopter": "lestari", "total_kontribusi": "0"},
		}},
		{Name: "individu", Rows: []seedRow{
			{"nik": "3276011403950001", "nama": "Budi Santoso", "id_adopter": budiAdopterID},
		}},
		{Name: "organisasi", Rows: []seedRow{
			{"npp": "NPP00042", "nama_organisasi": "Yayasan Lestari Satwa", "id_adopter": lestariAdopter},
		}},
		{Name: "adopsi", Rows: []seedRow{
			{"id_adopter": budiAdopterID, "id_hewan": bimaID, "status_pembayaran": "Lunas", "tgl_mulai_adopsi": "2025-01-01", "tgl_berhenti_adopsi": "2025-12-31", "kontribusi_finansial": "2500000"},
			{"id_adopter": lestariAdopter, "id_hewan": lunaID, "status_pembayaran": "Lunas", "tgl_mulai_adopsi": "2025-02-01", "tgl_berhenti_adopsi": "2026-01-31", "kontribusi_finansial": "10000000"},
			{"id_adopter": lestariAdopter, "id_hewan": tirtaID, "status_pembayaran": "Tertunda", "tgl_mulai_adopsi": "2025-03-01", "tgl_berhenti_adopsi": "2025-09-01", "kontribusi_finansial": "1500000"},
		}},
	}
}
